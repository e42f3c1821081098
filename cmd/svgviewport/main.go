// Command svgviewport prints the viewports and transforms resolved
// for the elements of SVG files.
//
// Usage:
//
//	svgviewport [flags] file.svg...
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/svgcoord/svgcoord"
	"github.com/benoitkugler/svgcoord/svgicon"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("svgviewport", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		dpi      = flags.Float64("dpi", 96, "resolution, in pixels per inch")
		width    = flags.Float64("width", 0, "width of the initial viewport, in pixels (0 for the size of the root viewBox)")
		height   = flags.Float64("height", 0, "height of the initial viewport, in pixels (0 for the size of the root viewBox)")
		fontFile = flags.String("font", "", "TrueType or OpenType `file` giving the x-height of the default font")
		strict   = flags.Bool("strict", false, "fail on invalid attributes instead of skipping them")
		verbose  = flags.Bool("v", false, "log skipped attributes and debug information")
	)
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: svgviewport [flags] file.svg...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	mode := svgicon.IgnoreErrorMode
	if *verbose {
		svgcoord.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer svgcoord.SetLogger(nil)
		mode = svgicon.WarnErrorMode
	}
	if *strict {
		mode = svgicon.StrictErrorMode
	}

	ctx := svgcoord.DefaultContext
	ctx.PixelsPerInch = *dpi
	ctx.BoundingBox = svgcoord.Bounds{W: *width, H: *height}
	if *fontFile != "" {
		f, err := loadFont(*fontFile, ctx.Font.PointSize)
		if err != nil {
			fmt.Fprintf(stderr, "svgviewport: %v\n", err)
			return 1
		}
		ctx.Font = f
	}

	code := 0
	for _, file := range flags.Args() {
		icon, err := svgicon.ReadIcon(file, svgicon.WithContext(ctx), svgicon.WithErrorMode(mode))
		if err != nil {
			fmt.Fprintf(stderr, "svgviewport: %s: %v\n", file, err)
			code = 1
			continue
		}
		fmt.Fprintf(stdout, "%s:\n", file)
		printIcon(stdout, icon)
	}
	return code
}

func loadFont(file string, pointSize float64) (svgcoord.Font, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return svgcoord.Font{}, fmt.Errorf("reading font: %w", err)
	}
	f, err := svgcoord.FontFromSFNT(data, pointSize)
	if err != nil {
		return svgcoord.Font{}, fmt.Errorf("%s: %w", file, err)
	}
	return f, nil
}

func formatBounds(b svgcoord.Bounds) string {
	return fmt.Sprintf("[%g %g %g %g]", b.X, b.Y, b.W, b.H)
}

func printIcon(w io.Writer, icon *svgicon.SvgIcon) {
	for _, el := range icon.Elements {
		var line strings.Builder
		line.WriteString(strings.Repeat("  ", el.Depth+1))
		line.WriteString(el.Tag)
		if el.ID != "" {
			line.WriteString(" #" + el.ID)
		}
		if vp := el.Viewport; vp != nil {
			line.WriteString(" viewport=" + formatBounds(vp.Bounds))
			if vp.HasViewBox {
				line.WriteString(" viewBox=" + formatBounds(vp.ViewBox))
			}
		}
		line.WriteString(" transform=" + el.Transform.String())
		fmt.Fprintln(w, line.String())
	}
}
