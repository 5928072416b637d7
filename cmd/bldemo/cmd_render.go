package main

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/blend2d"
)

var renderFlags struct {
	width  int
	height int
	output string
}

var renderCmd = &cobra.Command{
	Use:   "render <scene>",
	Short: "Render a demo scene to an image file",
	Long: `Renders one of the built-in demo scenes.

Scenes:
  gradient     rounded rect filled with a linear gradient
  composition  radial and linear gradients composed with difference
  stroking     cubic curves stroked with a gradient
  shapes       filled and stroked basic shapes`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().IntVar(&renderFlags.width, "width", 480, "image width")
	renderCmd.Flags().IntVar(&renderFlags.height, "height", 480, "image height")
	renderCmd.Flags().StringVarP(&renderFlags.output, "output", "o", "scene.bmp", "output file")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	scene, ok := scenes[args[0]]
	if !ok {
		return fmt.Errorf("unknown scene %q", args[0])
	}

	img, err := blend2d.NewImage(renderFlags.width, renderFlags.height, blend2d.FormatPRGB32)
	if err != nil {
		return err
	}
	defer img.Destroy()

	ctx, err := blend2d.NewContext(img)
	if err != nil {
		return err
	}
	ctx.SetCompOp(blend2d.CompOpSrcCopy)
	ctx.FillAll()
	ctx.SetCompOp(blend2d.CompOpSrcOver)

	w := float64(renderFlags.width)
	h := float64(renderFlags.height)
	if err := scene(ctx, w, h); err != nil {
		return fmt.Errorf("rendering %q: %w", args[0], err)
	}
	ctx.End()

	codecName := codecForPath(renderFlags.output)
	codec, err := blend2d.BuiltInCodecs().FindByName(codecName)
	if err != nil {
		return err
	}
	defer codec.Destroy()

	if err := img.WriteToFile(renderFlags.output, codec); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", renderFlags.output, renderFlags.width, renderFlags.height)
	return nil
}

// codecForPath picks an output codec by file extension, defaulting to BMP.
func codecForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "PNG"
	case ".jpg", ".jpeg":
		return "JPEG"
	default:
		return "BMP"
	}
}

var scenes = map[string]func(ctx *blend2d.Context, w, h float64) error{
	"gradient":    sceneGradient,
	"composition": sceneComposition,
	"stroking":    sceneStroking,
	"shapes":      sceneShapes,
}

func sceneGradient(ctx *blend2d.Context, w, h float64) error {
	linear := blend2d.NewLinearGradient(
		blend2d.LinearGradientValues{X0: 0, Y0: 0, X1: 0, Y1: h},
		blend2d.ExtendPad,
		nil,
		nil,
	)
	defer linear.Destroy()
	linear.AddStop32(0.0, 0xFFFFFFFF)
	linear.AddStop32(0.5, 0xFF5FAFDF)
	linear.AddStop32(1.0, 0xFF2F5FDF)

	if err := ctx.SetFillStyleGradient(linear); err != nil {
		return err
	}
	margin := w / 12
	return ctx.FillRoundRect(blend2d.RoundRect{
		X: margin, Y: margin, W: w - 2*margin, H: h - 2*margin, RX: w / 10, RY: w / 10,
	})
}

func sceneComposition(ctx *blend2d.Context, w, h float64) error {
	r := 3 * w / 8
	radial := blend2d.NewRadialGradient(
		blend2d.RadialGradientValues{X0: r, Y0: r, X1: r, Y1: r, R0: r},
		blend2d.ExtendPad,
		nil,
		nil,
	)
	defer radial.Destroy()
	radial.AddStop32(0, 0xFFFFFFFF)
	radial.AddStop32(1, 0xFFFF6F3F)

	if err := ctx.SetFillStyleGradient(radial); err != nil {
		return err
	}
	if err := ctx.FillCircle(r, r, r-w/24); err != nil {
		return err
	}

	linear := blend2d.NewLinearGradient(
		blend2d.LinearGradientValues{X0: w * 0.4, Y0: h * 0.4, X1: w, Y1: h},
		blend2d.ExtendPad,
		nil,
		nil,
	)
	defer linear.Destroy()
	linear.AddStop32(0, 0xFFFFFFFF)
	linear.AddStop32(1, 0xFF3F9FFF)

	if err := ctx.SetCompOp(blend2d.CompOpDifference); err != nil {
		return err
	}
	if err := ctx.SetFillStyleGradient(linear); err != nil {
		return err
	}
	return ctx.FillRoundRect(blend2d.RoundRect{
		X: w * 0.4, Y: h * 0.4, W: w * 0.55, H: h * 0.55, RX: w / 20, RY: w / 20,
	})
}

func sceneStroking(ctx *blend2d.Context, w, h float64) error {
	linear := blend2d.NewLinearGradient(
		blend2d.LinearGradientValues{X0: 0, Y0: 0, X1: 0, Y1: h},
		blend2d.ExtendPad,
		nil,
		nil,
	)
	defer linear.Destroy()
	linear.AddStop32(0, 0xFFFFFFFF)
	linear.AddStop32(1, 0xFF1F7FFF)

	path := blend2d.NewPath()
	defer path.Destroy()
	path.MoveTo(w/4, h/10)
	path.CubicTo(w*0.54, h/16, w/5, h*0.58, w*0.57, h*0.56)
	path.CubicTo(w*1.1, h*0.51, w*0.62, -h/3, w*0.57, h*0.9)

	if err := ctx.SetStrokeStyleGradient(linear); err != nil {
		return err
	}
	if err := ctx.SetStrokeWidth(w / 32); err != nil {
		return err
	}
	if err := ctx.SetStrokeCaps(blend2d.StrokeCapRound); err != nil {
		return err
	}
	return ctx.StrokePath(path)
}

func sceneShapes(ctx *blend2d.Context, w, h float64) error {
	if err := ctx.SetFillStyleRgba32(0xFFCC4444); err != nil {
		return err
	}
	if err := ctx.FillCircle(w/4, h/4, w/6); err != nil {
		return err
	}

	if err := ctx.SetFillStyleRgba32(0xFF44CC44); err != nil {
		return err
	}
	if err := ctx.FillRoundRect(blend2d.RoundRect{
		X: w / 2, Y: h / 8, W: w / 3, H: h / 4, RX: w / 32, RY: w / 32,
	}); err != nil {
		return err
	}

	if err := ctx.SetFillStyleRgba32(0xFF4444CC); err != nil {
		return err
	}
	if err := ctx.FillPie(blend2d.Pie{
		CX: w / 3, CY: 3 * h / 4, RX: w / 6, RY: w / 6, Start: 0, Sweep: 3 * math.Pi / 2,
	}); err != nil {
		return err
	}

	if err := ctx.SetStrokeStyleRgba32(0xFFFFFFFF); err != nil {
		return err
	}
	if err := ctx.SetStrokeWidth(w / 120); err != nil {
		return err
	}
	return ctx.StrokeRect(blend2d.Rect{X: w * 0.6, Y: h * 0.55, W: w / 3, H: h / 3})
}
