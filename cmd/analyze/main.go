// Command analyze is a small demonstration driver for the position
// analysis core: perft-style node counting, a logged evaluation trace,
// and a minimal fixed-depth search, standing in for the external search
// driver the core hands successors and evaluations to.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/arcbishop/chesscore/pkg/analysis"
	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/arcbishop/chesscore/pkg/board/fen"
	"github.com/arcbishop/chesscore/pkg/eval"
	"github.com/seekerror/build"
	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/seekerror/stdlib/pkg/util/contextx"
)

var version = build.NewVersion(0, 1, 0)

func main() {
	var (
		fenFlag     = flag.String("fen", "", "starting position in FEN; defaults to the initial position")
		depthFlag   = flag.Int("depth", 4, "perft/search depth; 0 means no depth limit")
		divideFlag  = flag.Bool("divide", false, "print a per-move node breakdown at the top ply")
		searchFlag  = flag.Bool("search", false, "run a minimal fixed-depth search instead of perft")
		versionFlag = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	ctx := context.Background()

	if *versionFlag {
		fmt.Println(version)
		return
	}

	var pos *board.Position
	if *fenFlag == "" {
		pos = board.NewInitial()
	} else {
		decoded, err := fen.Decode(*fenFlag)
		if err != nil {
			logw.Exitf(ctx, "invalid -fen: %v", err)
		}
		pos = decoded
	}

	h := analysis.New(pos, nil)
	logw.Infof(ctx, "analyze %v: %v to move", version, pos.Turn())
	h.Evaluate(true)

	var depthLimit lang.Optional[uint]
	if *depthFlag > 0 {
		depthLimit = lang.Some(uint(*depthFlag))
	}

	if *searchFlag {
		score := search(ctx, h, depthLimit)
		logw.Infof(ctx, "search depth=%d score=%v", *depthFlag, score)
		return
	}

	if *divideFlag {
		for i, child := range h.Successors() {
			childHandle := analysis.New(child, nil)
			nodes := perft(ctx, childHandle, childLimit(depthLimit))
			logw.Infof(ctx, "move %d: %s nodes=%d", i+1, fen.Encode(child), nodes)
		}
	}

	nodes := perft(ctx, h, depthLimit)
	logw.Infof(ctx, "perft depth=%d nodes=%d", *depthFlag, nodes)
}

// childLimit decrements limit by one ply, if set.
func childLimit(limit lang.Optional[uint]) lang.Optional[uint] {
	if v, ok := limit.V(); ok && v > 0 {
		return lang.Some(v - 1)
	}
	return limit
}

// perft counts the leaves of the legal-move tree rooted at h, to depth
// (unbounded if limit is unset). Checks ctx for cancellation between
// sibling subtrees so a long count can be interrupted.
func perft(ctx context.Context, h *analysis.Handle, limit lang.Optional[uint]) uint64 {
	if v, ok := limit.V(); ok && v == 0 {
		return 1
	}
	if contextx.IsCancelled(ctx) {
		return 0
	}
	var nodes uint64
	for _, child := range h.Successors() {
		nodes += perft(ctx, analysis.New(child, nil), childLimit(limit))
	}
	return nodes
}

// search is a minimal fixed-depth minimax over Evaluate, with no
// transposition table and no time control (both explicit non-goals of
// the core): scaffolding to exercise the Analysis Handle as a search
// driver would, not a component of the specified core.
func search(ctx context.Context, h *analysis.Handle, limit lang.Optional[uint]) eval.Weight {
	if v, ok := limit.V(); ok && v == 0 {
		return h.Evaluate(false)
	}
	if contextx.IsCancelled(ctx) {
		return h.Evaluate(false)
	}
	successors := h.Successors()
	if len(successors) == 0 {
		return h.Evaluate(false)
	}

	white := h.Position().Turn() == board.White
	best := search(ctx, analysis.New(successors[0], nil), childLimit(limit))
	for _, child := range successors[1:] {
		v := search(ctx, analysis.New(child, nil), childLimit(limit))
		if white && v > best {
			best = v
		}
		if !white && v < best {
			best = v
		}
	}
	return best
}
