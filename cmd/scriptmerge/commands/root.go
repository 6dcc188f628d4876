// Package commands implements the CLI commands for scriptmerge.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/scriptmerge/internal/app"
	"go.trai.ch/scriptmerge/internal/build"
	"go.trai.ch/scriptmerge/internal/core/domain"
)

// Application is the part of the application layer the commands drive.
type Application interface {
	Build(ctx context.Context, opts app.BuildOptions) (domain.BuildSummary, error)
	Watch(ctx context.Context, opts app.BuildOptions) error
	Clean(ctx context.Context, opts app.BuildOptions) (int, error)
	Resolve(ctx context.Context, o app.ConfigOverrides, component string) (string, error)
	TransformFile(ctx context.Context, o app.ConfigOverrides, component string, w io.Writer) (bool, error)
}

// CLI represents the command line interface for scriptmerge.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	config  app.ConfigOverrides
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "scriptmerge",
		Short:         "Merge external script files into Vue single-file components",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.config.Root, "root", "r", ".", "Project root directory")
	flags.BoolVarP(&c.config.Debug, "debug", "d", false, "Enable debug logging")
	flags.StringArrayVar(&c.config.Dirs, "dir", nil, "Search directory, repeatable (replaces the configured list)")
	flags.StringArrayVar(&c.config.Extensions, "ext", nil, "Script extension in priority order, repeatable")
	flags.StringVar(&c.config.SrcDir, "src", "", "Source directory bare search directories are joined under")
	flags.StringVar(&c.config.Comment, "comment", "", "Comment template injected above merged scripts")
	flags.BoolVar(&c.config.NoSameDir, "no-same-dir", false, "Disable the same-directory lookup")
	flags.StringToStringVar(&c.config.Alias, "alias", nil, "Host path alias as key=value, repeatable")

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newResolveCmd())
	rootCmd.AddCommand(c.newTransformCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}
