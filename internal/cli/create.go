package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Taifin/FSCreator/internal/creator"
)

var (
	createDest   string
	createDryRun bool
)

var createCmd = &cobra.Command{
	Use:   "create [manifest]",
	Short: "Materialize a declared tree onto the filesystem",
	Long: `Create the files and directories declared in the manifest.

The manifest defaults to ` + defaultManifest + ` in the current directory. The
whole tree is validated first; if validation finds any problem, nothing is
created. With --dry-run the command stops after validation and prints the
steps creation would take.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()
		log = log.With(zap.String("run_id", uuid.NewString()))

		m, err := resolveManifest(args, cfg)
		if err != nil {
			return err
		}
		dest := resolveDestination(createDest, m, cfg)

		c := newCreator(log)

		if createDryRun {
			issues, ops := planAll(c, m, dest)
			return printPlan(issues, ops)
		}

		var issues []creator.Issue
		created := 0
		for _, root := range m.Trees() {
			rootIssues := c.Create(root, dest)
			if len(rootIssues) == 0 {
				created++
			}
			issues = append(issues, rootIssues...)
		}

		if jsonOutput {
			return outputJSON(reportIssues(issues))
		}

		if len(issues) > 0 {
			PrintSection("Creation Failed")
			for _, issue := range issues {
				PrintError(fmt.Sprintf("%s: %s", issue.Entry.EntryName(), issue.Message))
			}
			return fmt.Errorf("%s reported", PrintCount(len(issues), "issue", "issues"))
		}

		PrintSuccess(fmt.Sprintf("Created %s successfully", PrintCount(created, "tree", "trees")))
		PrintLabelValue("Destination", dest)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createDest, "dest", "d", "", "Destination directory")
	createCmd.Flags().BoolVar(&createDryRun, "dry-run", false, "Validate and show planned steps without creating anything")
}
