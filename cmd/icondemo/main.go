package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	icondemo "github.com/gcslaoli/icondemo"
)

// go run ./cmd/icondemo
// go run ./cmd/icondemo path/to/project
// go run ./cmd/icondemo path/to/project --assets App/Assets.xcassets

// version is set via ldflags at build time.
var version = "dev"

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var assets string

	cmd := &cobra.Command{
		Use:          "icondemo [project-root]",
		Short:        "Generate DEMO-bannered copies of the app icon set",
		Args:         cobra.MaximumNArgs(1),
		Version:      version,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			layout, err := icondemo.ResolveLayout(root, assets)
			if err != nil {
				return err
			}

			gen := layout.Generator(icondemo.NewEngine(), icondemo.NewReporter(stdout))
			summary, err := gen.Run()
			if err != nil {
				return err
			}

			if n := len(summary.Failed); n > 0 {
				return fmt.Errorf("%w: %d of %d failed", icondemo.ErrIncomplete, n, n+len(summary.Created))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assets, "assets", icondemo.DefaultAssetsRoot, "Asset catalog directory, relative to the project root")
	return cmd
}
