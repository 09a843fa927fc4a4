package cli

import (
	"github.com/spf13/cobra"

	configfile "github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/config/file"
	snipfile "github.com/custodia-labs/snipdeck-cli/internal/adapters/driven/storage/file"
	"github.com/custodia-labs/snipdeck-cli/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the snippet file for invalid entries",
	Long: `Loads the snippet file and reports how many entries are valid and
how many would be dropped. The exit code is non-zero only when the
file itself is unreadable or malformed.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	path := snippetsFlag
	limits := loadLimits()

	if path == "" {
		d, err := ensureDeps()
		if err != nil {
			return err
		}
		path = d.Config.SnippetsPath
		limits = d.Config.Limits
	}

	store, err := snipfile.NewSnippetStore(path, limits)
	if err != nil {
		return err
	}

	snippets, err := store.List(cmd.Context())
	if err != nil {
		return err
	}

	cmd.Printf("%s: %d valid snippet(s), %d dropped\n", path, len(snippets), store.Dropped())
	return nil
}

// loadLimits reads configured field limits without requiring the full
// dependency stack; a missing config falls back to the defaults.
func loadLimits() domain.Limits {
	if deps != nil {
		return deps.Config.Limits
	}
	store, err := configfile.NewConfigStore(configFlag)
	if err != nil {
		return domain.DefaultLimits()
	}
	return configfile.BuildConfig(store).Limits
}
