package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dumpDir string

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "write the full contents of physical memory to a dump file",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTranslator()
		if err != nil {
			return err
		}

		path, err := tr.Dump(dumpDir, "vmemoria.dmp")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

func init() {
	dumpCmd.Flags().StringVar(&dumpDir, "dir", ".", "directory to write the dump file into")
}
