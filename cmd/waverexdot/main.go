// Command waverexdot compiles a pattern and writes its compiled node
// graph as GraphViz DOT. It is a diagnostics tool only, not part of the
// tested core engine.
package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/coregx/waverex/internal/graph"
	"github.com/coregx/waverex/internal/parse"
)

var cli struct {
	Pattern string `arg:"" help:"Pattern source to compile."`
	Output  string `short:"o" help:"Write DOT to this file instead of stdout."`
	Color   bool   `help:"Colorize node labels (only meaningful with --output omitted)."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("waverexdot"),
		kong.Description("Compile a waverex pattern and dump its node graph as GraphViz DOT."),
		kong.UsageOnError(),
	)

	arena := graph.NewArena(len(cli.Pattern))
	head, err := parse.New(arena, cli.Pattern).Parse()
	if err != nil {
		log.Fatalf("waverexdot: %v", err)
	}
	arena.Precompute()

	out := os.Stdout
	if cli.Output != "" {
		f, err := os.Create(cli.Output)
		if err != nil {
			log.Fatalf("waverexdot: %v", err)
		}
		defer f.Close()
		exportDOT(f, arena, head, false)
		return
	}

	exportDOT(out, arena, head, cli.Color)
}
