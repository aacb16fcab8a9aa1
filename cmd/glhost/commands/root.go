// Package commands implements the CLI commands for the glhost wrapper.
package commands

import (
	"context"

	"github.com/spf13/cobra"
	"go.nixgl.dev/glhost/internal/app"
	"go.nixgl.dev/glhost/internal/build"
	"go.nixgl.dev/glhost/internal/core/domain"
)

// CLI represents the command line interface for glhost.
type CLI struct {
	app      *app.App
	rootCmd  *cobra.Command
	exitCode int
}

// New creates a new CLI instance with the given app.
func New(a *app.App) *CLI {
	rootCmd := &cobra.Command{
		Use:   "glhost [flags] BINARY [ARGS...]",
		Short: "Run a Nix-built binary against the host GPU drivers",
		Long: `glhost runs a Nix-built OpenGL or CUDA binary against the GPU
drivers installed on the host. It scans the host library path for
driver DSOs, caches the resolution, and launches the binary with
LD_LIBRARY_PATH and the libglvnd vendor variables pointing at the
host driver directories.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().StringP("driver-directory", "d", "", "Scan this directory for driver libraries instead of the host load path")
	rootCmd.Flags().BoolP("print-ld-library-path", "p", false, "Print the resolved library path and exit without launching anything")
	rootCmd.Flags().Bool("no-cache", false, "Bypass the resolution cache and force a fresh scan")

	// Everything after the wrapped binary belongs to the wrapped
	// binary, flags included.
	rootCmd.Flags().SetInterspersed(false)

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.run

	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	printPath, _ := cmd.Flags().GetBool("print-ld-library-path")
	driverDir, _ := cmd.Flags().GetString("driver-directory")
	noCache, _ := cmd.Flags().GetBool("no-cache")

	if printPath && len(args) > 0 {
		return domain.ErrConflictingArguments
	}
	if !printPath && len(args) == 0 {
		_ = cmd.Help()
		return domain.ErrNoBinarySpecified
	}

	opts := app.RunOptions{
		DriverDirectory: driverDir,
		PrintSearchPath: printPath,
		NoCache:         noCache,
	}
	if len(args) > 0 {
		opts.Binary = args[0]
		opts.Args = args[1:]
	}

	code, err := c.app.Run(cmd.Context(), opts)
	c.exitCode = code
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// ExitCode returns the exit code of the wrapped binary after a
// successful Execute. It is zero until the binary has run.
func (c *CLI) ExitCode() int {
	return c.exitCode
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}
