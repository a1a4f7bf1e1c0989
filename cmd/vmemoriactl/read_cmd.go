package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var readCmd = &cobra.Command{
	Use:   "read <vaddr>",
	Short: "translate vaddr and print the word stored there",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("vmemoriactl: invalid virtual address %q: %w", args[0], err)
		}

		tr, err := openTranslator()
		if err != nil {
			return err
		}

		word, ok := tr.Read(v)
		if !ok {
			return fmt.Errorf("vmemoriactl: address %d is out of range", v)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\n", word)
		return nil
	},
}
