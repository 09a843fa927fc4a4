// Package cli provides the cobra command tree for snipdeck.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/inject"
	snipfile "github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
	"github.com/custodia-labs/snipdeck-cli/internal/core/ports/driven"
	"github.com/custodia-labs/snipdeck-cli/internal/core/services"
	"github.com/custodia-labs/snipdeck-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flag values.
var (
	verboseFlag  bool
	snippetsFlag string
	configFlag   string
)

// Deps holds the wired adapters the commands run against. Tests
// inject fakes through SetDeps; production commands build the real
// stack lazily via ensureDeps.
type Deps struct {
	Config       domain.Config
	SnippetStore driven.SnippetStore
	UsageStore   driven.UsageStore
	Injector     driven.Injector
	Notifier     driven.Notifier
	Search       *services.SearchService
}

// deps holds the current dependency set.
var deps *Deps

// SetDeps injects pre-built dependencies, bypassing ensureDeps.
func SetDeps(d *Deps) {
	deps = d
}

// SetVersion overrides the reported version string.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "snipdeck",
	Short: "Personal snippet launcher",
	Long: `snipdeck is a keyboard-driven snippet launcher.

Type to filter your snippets by relevance, navigate with the arrow
keys, and press enter to inject the selection. Tab collects several
snippets into one combined launch.

Query prefixes restrict the search scope:
  t:  match titles only
  c:  match content only`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verboseFlag {
			logger.SetVerbose(true)
		}
	},
	RunE: runLaunch,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&snippetsFlag, "snippets", "", "path to the snippet JSON file")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config directory (default ~/.snipdeck)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ensureDeps builds the production adapter stack on first use.
func ensureDeps() (*Deps, error) {
	if deps != nil {
		return deps, nil
	}

	store, err := configfile.NewConfigStore(configFlag)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	cfg := configfile.BuildConfig(store)
	if snippetsFlag != "" {
		cfg.SnippetsPath = snippetsFlag
	}
	if cfg.SnippetsPath == "" {
		cfg.SnippetsPath = filepath.Join(filepath.Dir(store.Path()), "snippets.json")
	}

	snippetStore, err := snipfile.NewSnippetStore(cfg.SnippetsPath, cfg.Limits)
	if err != nil {
		return nil, fmt.Errorf("loading snippets: %w", err)
	}

	usageStore, err := sqlite.NewStore(usageDataDir())
	if err != nil {
		return nil, fmt.Errorf("opening usage store: %w", err)
	}

	var injector driven.Injector = inject.NewClipboardInjector()
	if cfg.InjectorCommand != "" {
		injector = inject.NewCommandInjector(cfg.InjectorCommand)
	}

	var notifier driven.Notifier = inject.NewNopNotifier()
	if cfg.Notify {
		notifier = inject.NewDesktopNotifier()
	}

	deps = &Deps{
		Config:       cfg,
		SnippetStore: snippetStore,
		UsageStore:   usageStore,
		Injector:     injector,
		Notifier:     notifier,
		Search:       services.NewSearchService(cfg.Tuning),
	}
	return deps, nil
}

// usageDataDir resolves the usage database directory from the config
// flag, or leaves the sqlite default in place.
func usageDataDir() string {
	if configFlag == "" {
		return ""
	}
	return filepath.Join(configFlag, "data")
}

// closeDeps releases resources held by the production stack.
func closeDeps() {
	if deps == nil || deps.UsageStore == nil {
		return
	}
	if err := deps.UsageStore.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "closing usage store: %v\n", err)
	}
}
