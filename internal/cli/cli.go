// Package cli implements the fontlink command-line interface.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/fontlink/pkg/buildinfo"
	ferrors "github.com/matzehuels/fontlink/pkg/errors"
	"github.com/matzehuels/fontlink/pkg/fonts"
	"github.com/matzehuels/fontlink/pkg/manifest"
	"github.com/matzehuels/fontlink/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "fontlink"

	// hookSource identifies CLI events in observability hooks.
	hookSource = "cli"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "fontlink compiles font family requests into Google Fonts URLs",
		Long:         `fontlink turns a list of font families, weights and italic variants into a single Google Fonts CSS2 stylesheet URL, ready to drop into a <link> tag.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.urlCommand())
	root.AddCommand(c.tagCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.pickCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Input Resolution
// =============================================================================

// inputOpts are the flags shared by every command that takes families.
type inputOpts struct {
	manifest string // path to fonts.toml / fonts.yaml / fonts.json
}

func (o *inputOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.manifest, "manifest", "m", "", "read families from a manifest file (toml, yaml, json)")
}

// loadFamilies resolves the families for a command. Positional arguments
// use CSS2 syntax ("Open+Sans:wght@400;700"); otherwise the manifest flag is
// used, falling back to a fonts.* file in the working directory.
func loadFamilies(ctx context.Context, args []string, opts inputOpts) ([]fonts.Family, error) {
	logger := loggerFromContext(ctx)

	if len(args) > 0 {
		if opts.manifest != "" {
			return nil, ferrors.New(ferrors.ErrCodeInvalidInput, "pass families as arguments or via --manifest, not both")
		}
		return fonts.ParseFamilies(args)
	}

	path := opts.manifest
	if path == "" {
		found, err := manifest.Find(".")
		if err != nil {
			return nil, err
		}
		logger.Debug("using manifest", "path", found)
		path = found
	}

	res, err := manifest.Load(path)
	format := ""
	count := 0
	if res != nil {
		format, count = res.Type, len(res.Families)
	}
	observability.Compile().OnManifestLoad(ctx, format, count, err)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded manifest", "path", path, "format", res.Type, "families", len(res.Families))
	return res.Families, nil
}

// compile runs fonts.Compile with logging and hooks.
func compile(ctx context.Context, families []fonts.Family) (string, error) {
	prog := newProgress(loggerFromContext(ctx))
	start := time.Now()
	url, err := fonts.Compile(families)
	observability.Compile().OnCompile(ctx, hookSource, len(families), time.Since(start), err)
	if err != nil {
		return "", err
	}
	prog.done("Compiled %d families", len(families))
	return url, nil
}
