package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/randalmurphal/credbind/workdir"
)

var (
	sweepMaxAge time.Duration
	sweepDryRun bool
)

// sweepCmd represents the 'sweep' command. It reclaims transient
// directories left behind by builds that died before unbinding.
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Remove stale transient credential directories",
	Long: `Scans the workspace for transient credential directories older than the
age limit and deletes them. Directories younger than the limit are assumed
to belong to builds still running and are left alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		workspace := viper.GetString("workspace")

		result, err := workdir.Sweep(workspace, sweepMaxAge, sweepDryRun)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		verb := "removed"
		if sweepDryRun {
			verb = "would remove"
		}
		for _, path := range result.Removed {
			fmt.Fprintf(w, "%s %s\n", verb, path)
		}
		fmt.Fprintf(w, "%s: %d removed, %d kept\n", workspace, len(result.Removed), len(result.Kept))

		if len(result.Errors) > 0 {
			for _, msg := range result.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
			}
			return fmt.Errorf("sweep finished with %d errors", len(result.Errors))
		}

		return nil
	},
}

func init() {
	sweepCmd.Flags().DurationVar(&sweepMaxAge, "max-age", 24*time.Hour, "age after which a transient directory is considered stale")
	sweepCmd.Flags().BoolVar(&sweepDryRun, "dry-run", false, "report what would be removed without deleting anything")
}
