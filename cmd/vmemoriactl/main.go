// Command vmemoriactl is a small one-shot driver that builds a fresh
// translator.Translator for each subcommand, grounded on the teacher's cmd/memoria/main.go
// entry point but restructured as a spf13/cobra tree (following the
// pack's akita/cmd/root.go) instead of a single long-running HTTP
// server, since this module's external interface is a direct Go API
// (spec §6), not a network protocol.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
