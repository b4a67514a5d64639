package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Taifin/FSCreator/internal/config"
	"github.com/Taifin/FSCreator/internal/creator"
	"github.com/Taifin/FSCreator/internal/fsops"
	"github.com/Taifin/FSCreator/internal/logging"
	"github.com/Taifin/FSCreator/internal/manifest"
)

// defaultManifest is the manifest file looked up when neither the
// command line nor the config names one.
const defaultManifest = "fstree.yaml"

// loadConfig loads fscreator.yaml from the working directory. A missing
// config file is not an error; environment overrides still apply.
func loadConfig() (*config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("failed to load %s: %w", config.ConfigFileName, err)
	}
	return cfg, nil
}

// newLogger builds the CLI logger, preferring the --log-level flag over
// the configured level.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := logLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if level == "" {
		level = "warn"
	}
	return logging.New(level)
}

// newCreator wires a Creator over the real filesystem.
func newCreator(log *zap.Logger) *creator.Creator {
	return creator.New(fsops.NewRealFS(), log)
}

// resolveManifest returns the manifest to use: the positional argument,
// then the configured path, then the default name.
func resolveManifest(args []string, cfg *config.Config) (*manifest.Manifest, error) {
	path := defaultManifest
	if cfg.Manifest != "" {
		path = cfg.Manifest
	}
	if len(args) > 0 {
		path = args[0]
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
	}
	return m, nil
}

// resolveDestination returns the destination to use: the --dest flag,
// then the manifest's declared destination, then the configured one.
func resolveDestination(flagDest string, m *manifest.Manifest, cfg *config.Config) string {
	switch {
	case flagDest != "":
		return flagDest
	case m.Destination != "":
		return m.Destination
	default:
		return cfg.Destination
	}
}

// issueReport is the JSON shape of one reported issue.
type issueReport struct {
	Entry   string `json:"entry"`
	Message string `json:"message"`
}

func reportIssues(issues []creator.Issue) []issueReport {
	reports := make([]issueReport, 0, len(issues))
	for _, issue := range issues {
		reports = append(reports, issueReport{
			Entry:   issue.Entry.EntryName(),
			Message: issue.Message,
		})
	}
	return reports
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
