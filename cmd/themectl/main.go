// themectl inspects and exports the dashboard theme.
//
// Usage:
//
//	themectl list [--group colors]
//	themectl get colors.primary
//	themectl get breakpoints
//	themectl colors
//	themectl export css -o assets/theme.css
//	themectl check [--strict]
//	themectl hash-key < keys.txt
package main

import (
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"dashboard-theme/internal/ui"
)

func main() {
	_ = godotenv.Load()

	os.Exit(execute(newRootCmd(), os.Stderr))
}

// execute runs root and reports a failure on stderr, returning the exit code.
func execute(root *cobra.Command, stderr io.Writer) int {
	if err := root.Execute(); err != nil {
		ui.SetOutput(stderr)
		ui.LogStatus("error", err.Error())
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "themectl",
		Short:         "Inspect and export the dashboard theme",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ui.SetOutput(cmd.OutOrStdout())
		},
	}

	root.AddCommand(
		newListCmd(),
		newGetCmd(),
		newColorsCmd(),
		newExportCmd(),
		newCheckCmd(),
		newHashKeyCmd(),
	)
	return root
}
