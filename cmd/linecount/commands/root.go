/*
Package commands implements the CLI command structure for linecount: the
root command, which runs a count, and the version subcommand.
*/
package commands

import (
	"fmt"

	"github.com/sonemaro/linecount/cmd/linecount/app"
	"github.com/sonemaro/linecount/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Options holds command-line options that apply to all commands
type Options struct {
	Config *config.Config

	// Fs is the filesystem counted; nil means the OS filesystem
	Fs afero.Fs

	verbose    int
	noColor    bool
	bufferSize int
}

// NewRootCommand creates the root command for the application
func NewRootCommand() *cobra.Command {
	return newRootCommand(&Options{})
}

func newRootCommand(opts *Options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "linecount [path]",
		Short: "Count lines of source, script, HDL and text files in a tree",
		Long: `linecount walks a directory tree depth-first and prints, for every counted
file, the lines it added, the running total and its path relative to the
root. Files in a directory are reported before its subdirectories.

Only files with a known source, script, hardware-description, config or
text extension are counted. Vendored zydis and ia32-doc sources and the
build/bin output directory are always skipped.

When no path is given the parent of the working directory (` + config.DefaultRoot + `) is counted.`,
		Args: cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeCommand(cmd, opts)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := config.DefaultRoot
			if len(args) == 1 {
				root = args[0]
			}
			return runCount(cmd, root, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&opts.verbose, "verbose", "v",
		"verbose logging (can be used multiple times)")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false,
		"disable styled report output")
	rootCmd.Flags().IntVarP(&opts.bufferSize, "buffer-size", "b", config.DefaultBufferSize,
		"buffer size for file reading")

	rootCmd.AddCommand(newVersionCommand(opts))

	return rootCmd
}

// initializeCommand loads the environment configuration and applies any
// flags that were set explicitly on top of it.
func initializeCommand(cmd *cobra.Command, opts *Options) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = opts.verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = opts.noColor
	}
	if f := cmd.Flags().Lookup("buffer-size"); f != nil && f.Changed {
		cfg.BufferSize = opts.bufferSize
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts.Config = &cfg
	return nil
}

func runCount(cmd *cobra.Command, root string, opts *Options) error {
	appOpts := []app.Option{
		app.WithOutput(cmd.OutOrStdout()),
		app.WithLogOutput(cmd.ErrOrStderr()),
	}
	if opts.Fs != nil {
		appOpts = append(appOpts, app.WithFs(opts.Fs))
	}

	_, err := app.New(opts.Config, appOpts...).Run(root)
	return err
}
