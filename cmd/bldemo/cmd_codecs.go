package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/blend2d"
)

var codecsCmd = &cobra.Command{
	Use:   "codecs",
	Short: "List the image codecs built into the native library",
	Args:  cobra.NoArgs,
	RunE:  runCodecs,
}

func init() {
	rootCmd.AddCommand(codecsCmd)
}

func runCodecs(cmd *cobra.Command, args []string) error {
	codecs := blend2d.BuiltInCodecs()
	for i := 0; i < codecs.Len(); i++ {
		codec := codecs.At(i)
		var caps []string
		if codec.Features()&blend2d.CodecFeatureRead != 0 {
			caps = append(caps, "read")
		}
		if codec.Features()&blend2d.CodecFeatureWrite != 0 {
			caps = append(caps, "write")
		}
		fmt.Printf("%-6s %-12s %-12s %s\n",
			codec.Name(),
			codec.MimeType(),
			strings.Join(codec.Extensions(), ","),
			strings.Join(caps, "+"),
		)
		codec.Destroy()
	}
	return nil
}
