package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	jsonOutput bool
	logLevel   string
)

// rootCmd is the root command for fscreator.
var rootCmd = &cobra.Command{
	Use:     "fscreator",
	Version: "dev",
	Short:   "Materialize declared file trees onto the filesystem",
	Long: `fscreator materializes a declared tree of files and directories onto a
real filesystem.

The whole tree is validated before anything is created: bad names, sibling
name collisions, circular directory references, and collisions with existing
on-disk entries all abort creation with zero mutation. Operational failures
during creation are contained to the failed entry's own subtree and reported
against the entry that caused them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion sets the CLI version reported by the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the fscreator CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(validateCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
