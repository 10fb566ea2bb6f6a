// main.go sets up the command-line interface for credbind using the Cobra
// library. It defines the root command, the run, vars, and sweep
// subcommands, and the process-level settings resolved through Viper.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev" // this will be set by the linker

var cfgFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	// A child process that ran and failed already wrote its own output;
	// propagate its exit code silently.
	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

var rootCmd *cobra.Command

func init() {
	rootCmd = newRootCmd()

	// Defaults used when neither a flag nor a CREDBIND_* variable is set.
	viper.SetDefault("workspace", os.TempDir())
	viper.SetDefault("git_tool", "git")
}

// newRootCmd creates and configures a new root cobra command. It is used
// for the main application command as well as fresh instances in tests.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credbind",
		Short: "credbind runs commands with stored credentials bound into the environment",
		Long: `credbind reads a binding manifest, fetches the declared credentials from a
YAML store, materializes transient key files and wrapper scripts, and runs a
command with the resulting environment. Everything it wrote is deleted when
the command exits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if viper.GetBool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			})))
		},
	}

	cmd.AddCommand(runCmd)
	cmd.AddCommand(varsCmd)
	cmd.AddCommand(sweepCmd)

	cmd.Version = version

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "credbind.yaml", "binding manifest file")
	cmd.PersistentFlags().String("workspace", "", "directory for transient credential files (default is the system temp dir)")
	cmd.PersistentFlags().String("git-tool", "git", "git client name or path, used when locating ssh on Windows")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	viper.BindPFlag("workspace", cmd.PersistentFlags().Lookup("workspace"))
	viper.BindPFlag("git_tool", cmd.PersistentFlags().Lookup("git-tool"))
	viper.BindPFlag("verbose", cmd.PersistentFlags().Lookup("verbose"))

	viper.SetEnvPrefix("CREDBIND")
	viper.AutomaticEnv()

	return cmd
}

// exitCodeError carries a child process exit code through cobra.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}
