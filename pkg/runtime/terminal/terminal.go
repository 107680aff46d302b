package terminal

import (
	"io"
	"os"

	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/commands"
	"github.com/Marcus-dot/project-dashboard-sub000/pkg/runtime/terminal/export"

	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Project portfolio calculators",
	}

	cmd.AddCommand(commands.NewNPVCmd(cli.reporter))
	cmd.AddCommand(commands.NewLumpSumCmd(cli.reporter))
	cmd.AddCommand(commands.NewRiskCmd(cli.reporter))
	cmd.AddCommand(commands.NewWastageCmd(cli.reporter))
	cmd.AddCommand(commands.NewHealthCmd(cli.reporter))

	return cmd
}
