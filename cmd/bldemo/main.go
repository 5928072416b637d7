// Command bldemo exercises the blend2d bindings from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "bldemo",
	Short:        "Render demo scenes and inspect images with blend2d",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bldemo:", err)
		os.Exit(1)
	}
}
