package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/credbind/config"
)

// varsCmd represents the 'vars' command. It shows which variables each
// binding exports without fetching a credential or writing a file, and
// fails when two bindings export the same variable.
var varsCmd = &cobra.Command{
	Use:   "vars",
	Short: "List the variables the manifest's bindings export",
	Long: `Prints each binding's credential, kind, and configured variable names.
Bindings of kind ssh-key additionally export GIT_SSH, GIT_SSH_VARIANT, and
(for passphrase-protected keys) SSH_ASKPASS when they run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		bindings, err := cfg.Build()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		for i, b := range bindings {
			decl := cfg.Bindings[i]
			fmt.Fprintf(w, "%s (%s): %s\n", decl.Credential, b.Kind(), strings.Join(b.Variables(), " "))
		}

		return nil
	},
}
