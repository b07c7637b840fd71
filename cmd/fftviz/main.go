// Command fftviz downscales a grayscale image and renders the centered
// log-magnitude spectrum of the result.
//
// Usage:
//
//	fftviz [--config file] [--log-level level] [-v] <command>
//
// Examples:
//
//	fftviz run testimg.jpg
//	fftviz run --factor 4 --backend gonum --output-dir out photo.png
//	fftviz run --width 256 --height 256 --kernel catmull-rom photo.png
//	fftviz config
//	fftviz list
//
// Every setting may also come from fftviz.yaml (searched in ., ./configs and
// $HOME/.config/fftviz) or from FFTVIZ_* environment variables, e.g.
// FFTVIZ_SPECTRUM_BACKEND=godsp.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
