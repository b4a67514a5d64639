package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Taifin/FSCreator/internal/creator"
	"github.com/Taifin/FSCreator/internal/manifest"
)

var validateDest string

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Validate a declared tree without creating anything",
	Long: `Validate the manifest's declared tree against the destination.

Validation never mutates the filesystem. On success the ordered creation
steps are printed; otherwise every structural problem is reported against
the entry that caused it.`,
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

		m, err := resolveManifest(args, cfg)
		if err != nil {
			return err
		}
		dest := resolveDestination(validateDest, m, cfg)

		issues, ops := planAll(newCreator(log), m, dest)
		return printPlan(issues, ops)
	},
}

// planAll plans every top-level tree in declaration order. Each tree is
// planned independently; collisions between separate top-level trees
// only surface once creation actually runs.
func planAll(c *creator.Creator, m *manifest.Manifest, dest string) ([]creator.Issue, []creator.Op) {
	var issues []creator.Issue
	var ops []creator.Op
	for _, root := range m.Trees() {
		rootIssues, rootOps := c.Plan(root, dest)
		issues = append(issues, rootIssues...)
		ops = append(ops, rootOps...)
	}
	return issues, ops
}

// printPlan renders a plan's issues or, when clean, its ordered steps.
func printPlan(issues []creator.Issue, ops []creator.Op) error {
	if jsonOutput {
		return outputJSON(struct {
			Issues []issueReport `json:"issues"`
			Steps  []creator.Op  `json:"steps"`
		}{reportIssues(issues), ops})
	}

	if len(issues) > 0 {
		PrintSection("Validation Failed")
		for _, issue := range issues {
			PrintError(fmt.Sprintf("%s: %s", issue.Entry.EntryName(), issue.Message))
		}
		return fmt.Errorf("%s reported", PrintCount(len(issues), "issue", "issues"))
	}

	PrintSuccess("Tree is valid")
	if len(ops) > 0 {
		PrintInfo(fmt.Sprintf("Would create %s:", PrintCount(len(ops), "entry", "entries")))
		items := make([]string, 0, len(ops))
		for _, op := range ops {
			kind := "file"
			if op.Dir {
				kind = "dir"
			}
			items = append(items, fmt.Sprintf("%s: %s", kind, op.Path))
		}
		PrintList(items, 1)
	}
	return nil
}

func init() {
	validateCmd.Flags().StringVarP(&validateDest, "dest", "d", "", "Destination directory")
}
