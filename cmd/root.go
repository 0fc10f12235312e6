package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duosh/duosh/core"
	"github.com/duosh/duosh/core/config"
)

var (
	cfgPath     string
	commandLine string
)

func loadConfig() (*config.Configuration, error) {
	return config.Load(cfgPath)
}

// rootCmd runs an interactive session when called without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "duosh",
	Short: "A small command interpreter with two stage pipelines.",
	Long: `duosh reads one command line at a time and runs it: builtin commands
(cd, exit) execute in the interpreter itself, everything else is launched
as a program found on PATH. A single "|" connects two commands through a
pipe.`,
	Args: cobra.ExactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		configuration, err := loadConfig()
		if err != nil {
			return err
		}

		shell, err := core.NewShell(configuration, core.StdSessionIO())
		if err != nil {
			return err
		}
		defer shell.Close()

		if commandLine != "" {
			// One-shot mode exposes the command's status; interactive
			// sessions always end in success.
			if status := shell.RunCommand(commandLine); status != 0 {
				return &exitStatusError{status: status}
			}
			return nil
		}

		return shell.Run()
	},
}

// exitStatusError carries a child's exit status out of one-shot mode. It
// prints nothing itself; the command's own stderr is sufficient.
type exitStatusError struct {
	status int
}

func (e *exitStatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.status)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var statusErr *exitStatusError
		if errors.As(err, &statusErr) {
			os.Exit(statusErr.status)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
