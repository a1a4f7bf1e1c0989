package main

import (
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "vmemoriactl",
	Short: "vmemoriactl drives a hierarchical demand-paged virtual memory translator",
	Long: "vmemoriactl builds a translator.Translator from a JSON geometry " +
		"config and exercises it: initializing it, translating single " +
		"addresses, running a stress scenario, or dumping its physical " +
		"memory to disk.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "vmemoria.json", "path to the translator config file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(stressCmd)
	rootCmd.AddCommand(dumpCmd)
}
