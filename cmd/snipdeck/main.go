// Command snipdeck is a keyboard-driven personal snippet launcher.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/snipdeck-cli/internal/adapters/driving/cli"
)

// version is injected at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	cli.SetVersion(version)

	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
