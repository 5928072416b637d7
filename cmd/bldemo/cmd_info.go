package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/blend2d"
)

var infoCmd = &cobra.Command{
	Use:   "info <image-file>",
	Short: "Print image header information without decoding pixels",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	codec, err := blend2d.BuiltInCodecs().FindByData(data)
	if err != nil {
		return err
	}
	defer codec.Destroy()

	dec, err := codec.CreateDecoder()
	if err != nil {
		return err
	}
	defer dec.Destroy()

	info, err := dec.ReadInfo(data)
	if err != nil {
		return fmt.Errorf("reading header of %q: %w", args[0], err)
	}

	fmt.Printf("codec:   %s (%s)\n", codec.Name(), codec.MimeType())
	fmt.Printf("format:  %s\n", info.FormatName())
	fmt.Printf("size:    %dx%d\n", info.Size.W, info.Size.H)
	fmt.Printf("depth:   %d bpp, %d plane(s)\n", info.Depth, info.PlaneCount)
	if info.FrameCount > 1 {
		fmt.Printf("frames:  %d\n", info.FrameCount)
	}
	return nil
}
