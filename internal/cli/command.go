package cli

import (
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/idelchi/dupfind/internal/dupfind"
	"github.com/idelchi/dupfind/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// command builds the root cobra command.
func (c CLI) command() *cobra.Command {
	var (
		options    dupfind.Options
		minSizeStr string
	)

	allowedOutputs := []string{"table", "json"}

	cmd := &cobra.Command{
		Use:   "dupfind [path]",
		Short: "Find duplicate files in a directory tree",
		Long: heredoc.Doc(`
			dupfind scans a directory tree and reports groups of files that share
			both filename and content (SHA-256), along with an estimate of the
			disk space that removing the redundant copies would reclaim.

			With no path argument it runs interactively, prompting for the root
			directory. Nothing is ever deleted, moved, or linked; dupfind only
			reports.

			The '-i' flag outputs a shell integration snippet that pipes the
			duplicate paths into 'fzf' for interactive browsing.
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if options.Version {
				//nolint:forbidigo // Version output to console
				fmt.Println(c.version)

				return nil
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				//nolint:forbidigo // Integration script output to console
				fmt.Println(rendered)

				return nil
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			// Parse minSize string to bytes
			if minSizeStr != "" {
				size, err := humanize.ParseBytes(minSizeStr)
				if err != nil {
					return fmt.Errorf("invalid min-size: %w", err)
				}

				options.MinSize = int64(size) //nolint:gosec // Size conversion from humanize is safe
			}

			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(options)
		},
	}

	cmd.Flags().StringVar(&minSizeStr, "min-size", "0KB", "Minimum file size to consider (e.g., 1KB)")
	cmd.Flags().StringVarP(&options.Output, "output", "o", "table", "Output format: json or table")
	cmd.Flags().BoolVar(&options.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	cmd.Flags().BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	cmd.Flags().SortFlags = false

	return cmd
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.command().Execute()
}
