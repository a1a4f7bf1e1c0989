package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var writeCmd = &cobra.Command{
	Use:   "write <vaddr> <word>",
	Short: "translate vaddr and store word there",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("vmemoriactl: invalid virtual address %q: %w", args[0], err)
		}
		word, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("vmemoriactl: invalid word %q: %w", args[1], err)
		}

		tr, err := openTranslator()
		if err != nil {
			return err
		}

		if !tr.Write(v, word) {
			return fmt.Errorf("vmemoriactl: address %d is out of range", v)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "ok")
		return nil
	},
}
