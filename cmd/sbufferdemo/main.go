package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/mikenye/sbuffer"
	"github.com/urfave/cli/v3"
)

// wallSegment is the JSON shape accepted on stdin (or via --input): one
// candidate wall span per raster column range, in the order a renderer
// would submit them (typically front-to-back or back-to-front depending
// on the caller's traversal of the scene).
type wallSegment struct {
	ID string  `json:"id"`
	X0 float64 `json:"x0"`
	X1 float64 `json:"x1"`
	W0 float64 `json:"w0"`
	W1 float64 `json:"w1"`
}

func main() {
	cmd := &cli.Command{
		Name:      "sbufferdemo",
		Usage:     "Resolves a list of wall segments through an S-Buffer and prints the visible result",
		UsageText: "sbufferdemo --size <value> --znear <value> [--input <file>] [--dump]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "size",
				Usage:    "Raster width in columns",
				Value:    80,
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v <= 0 {
						return fmt.Errorf("size must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{
				Name:     "znear",
				Usage:    "View-space distance to the near-clipping plane",
				Value:    1.0,
				OnlyOnce: true,
				Validator: func(v float64) error {
					if v <= 0 {
						return fmt.Errorf("znear must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{
				Name:     "maxdepth",
				Usage:    "Maximum insertion-engine descent depth",
				Value:    64,
				OnlyOnce: true,
			},
			&cli.StringFlag{
				Name:     "input",
				Usage:    "Path to a JSON array of wall segments (default: stdin)",
				OnlyOnce: true,
			},
			&cli.IntFlag{
				Name:     "random",
				Usage:    "Synthesize N random candidate spans instead of reading JSON",
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(v int64) error {
					if v < 0 {
						return fmt.Errorf("random must not be negative")
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:     "dump",
				Usage:    "Print the indented tree structure instead of the column strip",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// randomSegments synthesizes n candidate spans scattered across [0, size),
// each with random reciprocal depths in [0.001, 1.001). Mirrors genlinesegments' approach of
// generating random geometry with math/rand/v2 and skipping degenerate
// (zero-width) results.
func randomSegments(size, n int) []wallSegment {
	segments := make([]wallSegment, n)
	for i := range segments {
		var x0, x1 int
		for {
			x0 = rand.IntN(size)
			x1 = rand.IntN(size)
			if x0 != x1 {
				break
			}
		}
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		segments[i] = wallSegment{
			ID: fmt.Sprintf("R%d", i),
			X0: float64(x0),
			X1: float64(x1),
			W0: rand.Float64() + 1e-3,
			W1: rand.Float64() + 1e-3,
		}
	}
	return segments
}

func run(_ context.Context, cmd *cli.Command) error {
	size := int(cmd.Int("size"))
	zNear := cmd.Float("znear")
	maxDepth := int(cmd.Int("maxdepth"))

	var segments []wallSegment
	if n := int(cmd.Int("random")); n > 0 {
		segments = randomSegments(size, n)
	} else {
		var r io.Reader = os.Stdin
		if path := cmd.String("input"); path != "" {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("sbufferdemo: opening input: %w", err)
			}
			defer f.Close()
			r = f
		}

		if err := json.NewDecoder(r).Decode(&segments); err != nil {
			return fmt.Errorf("sbufferdemo: decoding input: %w", err)
		}
	}

	buf, err := sbuffer.Init[string](size, zNear, maxDepth)
	if err != nil {
		return fmt.Errorf("sbufferdemo: %w", err)
	}

	for _, s := range segments {
		if err := buf.Push(s.X0, s.X1, s.W0, s.W1, s.ID); err != nil {
			fmt.Fprintf(os.Stderr, "sbufferdemo: push %q: %v\n", s.ID, err)
		}
	}

	if cmd.Bool("dump") {
		fmt.Print(buf.Dump())
		return nil
	}

	fmt.Println(buf.Print())
	return nil
}
