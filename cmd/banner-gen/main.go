// Generates banner templates from images: a logo scaled down to block
// glyphs, ready to paste into the template table or try with the
// :banner command after a rebuild.
//
//	banner-gen -w 55 logo.png
//	banner-gen -w 40 -invert -o mark.txt logo.png
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"os"
)

func main() {
	var (
		cols      = flag.Int("w", 55, "output width in columns")
		threshold = flag.Float64("t", 0.5, "luminance cutoff for ink, 0 to 1")
		invert    = flag.Bool("invert", false, "ink dark pixels instead of light")
		output    = flag.String("o", "-", "output file, - for stdout")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: banner-gen [options] <image.png>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	f, err := os.Open(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "banner-gen: %v\n", err)
		os.Exit(1)
	}
	img, _, err := image.Decode(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "banner-gen: decode: %v\n", err)
		os.Exit(1)
	}

	tpl := Render(img, *cols, *threshold, *invert)
	if tpl == "" {
		fmt.Fprintln(os.Stderr, "banner-gen: nothing to render")
		os.Exit(1)
	}

	out := os.Stdout
	if *output != "-" && *output != "" {
		out, err = os.Create(*output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "banner-gen: %v\n", err)
			os.Exit(1)
		}
		defer out.Close()
	}
	fmt.Fprintln(out, tpl)
}
