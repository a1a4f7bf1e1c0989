package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize a translator from the config file and report its stats counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTranslator()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "translator initialized")
		fmt.Fprintf(cmd.OutOrStdout(), "stats: %+v\n", tr.Stats())
		return nil
	},
}
