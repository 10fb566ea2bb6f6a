package main

import (
	"errors"
	"log/slog"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	credbind "github.com/randalmurphal/credbind"
	"github.com/randalmurphal/credbind/config"
)

// runCmd represents the 'run' command. It binds every credential the
// manifest declares and runs the given command with the merged environment.
var runCmd = &cobra.Command{
	Use:   "run -- <command> [args...]",
	Short: "Run a command with bound credentials",
	Long: `Loads the binding manifest, binds every declared credential, and runs the
command with the merged environment. Transient key files and wrapper scripts
are deleted when the command exits, on success and failure alike. The
command's exit code is propagated.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		store, err := cfg.OpenStore()
		if err != nil {
			return err
		}

		bindings, err := cfg.Build()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		bound, err := credbind.BindAll(ctx, credbind.BindContext{
			Workspace: viper.GetString("workspace"),
			Store:     store,
			GitTool:   viper.GetString("git_tool"),
		}, bindings...)
		if err != nil {
			return err
		}
		defer func() {
			if err := bound.Unbind(); err != nil {
				slog.Warn("cleanup failed", "error", err)
			}
		}()

		child := exec.CommandContext(ctx, args[0], args[1:]...)
		child.Stdin = os.Stdin
		child.Stdout = os.Stdout
		child.Stderr = os.Stderr
		child.Env = append(os.Environ(), bound.Env.Strings()...)

		if err := child.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return &exitCodeError{code: exitErr.ExitCode()}
			}
			return err
		}

		return nil
	},
}
