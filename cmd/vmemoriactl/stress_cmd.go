package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tp-go-memoria/vmemoria/config"
)

var stressPageCount int

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "write a distinct value to many pages then read them back, forcing eviction",
	Long: "stress exercises the translator's eviction and restore path " +
		"(spec.md §8's stress property): it writes a distinct value to " +
		"--pages virtual pages, then reads every one of them back in the " +
		"same order and reports any mismatch.",
	RunE: func(cmd *cobra.Command, args []string) error {
		tr, err := openTranslator()
		if err != nil {
			return err
		}

		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("vmemoriactl: %w", err)
		}
		pageSize := cfg.Geometry().P()

		out := cmd.OutOrStdout()
		var addrs []uint64
		for i := 0; i < stressPageCount; i++ {
			addrs = append(addrs, uint64(i)*pageSize)
		}

		for _, v := range addrs {
			if !tr.Write(v, v) {
				return fmt.Errorf("vmemoriactl: write to %d rejected as out of range", v)
			}
		}

		mismatches := 0
		for _, v := range addrs {
			got, ok := tr.Read(v)
			if !ok {
				return fmt.Errorf("vmemoriactl: read of %d rejected as out of range", v)
			}
			if got != v {
				fmt.Fprintf(out, "mismatch at %d: want %d, got %d\n", v, v, got)
				mismatches++
			}
		}

		stats := tr.Stats()
		fmt.Fprintf(out, "wrote/read back %d pages, %d mismatches\n", len(addrs), mismatches)
		fmt.Fprintf(out, "stats: %+v\n", stats)
		if mismatches > 0 {
			return fmt.Errorf("vmemoriactl: stress run found %d mismatches", mismatches)
		}
		return nil
	},
}

func init() {
	stressCmd.Flags().IntVar(&stressPageCount, "pages", 16, "number of distinct pages to exercise")
}
