// Package eval computes the signed positional score of a chess position:
// material, attack/defence, centre control and checkmate terminal value.
package eval

import "github.com/arcbishop/chesscore/pkg/board"

// Weight is the evaluator's scalar score type: positive favours white.
type Weight int64

// Weights holds every tunable constant the evaluator uses. Built via
// DefaultWeights and adjusted with functional options, mirroring the
// reference engine's per-package Options pattern.
type Weights struct {
	Material map[board.Figure]Weight

	CheckmateWeight  Weight
	PiecePresentMult Weight
	PieceAttackMult  Weight
	PieceDefenceMult Weight
	CentreCellMult   Weight

	// CentreTable holds a per-square weight, indexed like a Position's
	// squares (row-major, length board.Current().Count()). Only
	// meaningful for the board size it was built for; nil omits the
	// centre-control term entirely (spec §4.4: "For non-8x8 boards the
	// table must be supplied or the term omitted").
	CentreTable []Weight
}

// DefaultWeights returns the spec's constants for the current board size,
// with the standard 8x8 centre table when the board is 8x8 and no centre
// table otherwise.
func DefaultWeights() Weights {
	w := Weights{
		Material: map[board.Figure]Weight{
			board.Pawn:   100,
			board.Knight: 300,
			board.Bishop: 300,
			board.Rook:   500,
			board.Queen:  900,
			board.King:   0,
		},
		CheckmateWeight:  1_000_000,
		PiecePresentMult: 1,
		PieceAttackMult:  1,
		PieceDefenceMult: 1,
		CentreCellMult:   300,
	}
	w.CentreTable = standardCentreTable()
	return w
}

// standardCentreTable8x8 is the reference engine's literal per-square centre
// weight table, rank 1 (index 0-7) through rank 8 (index 56-63), file a to h
// within each rank.
var standardCentreTable8x8 = [64]Weight{
	3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3,
	2, 2, 7, 7, 7, 7, 2, 2,
	1, 4, 6, 8, 8, 6, 4, 1,
	1, 4, 6, 8, 8, 6, 4, 1,
	2, 2, 7, 7, 7, 7, 2, 2,
	3, 3, 3, 3, 3, 3, 3, 3,
	3, 3, 3, 3, 3, 3, 3, 3,
}

// standardCentreTable returns the reference engine's 8x8 weight table, or
// nil if the current board isn't 8x8 (spec §4.4: the table is supplied or
// the term is omitted for other sizes).
func standardCentreTable() []Weight {
	params := board.Current()
	if params.Width != 8 || params.Height != 8 {
		return nil
	}
	table := make([]Weight, 64)
	copy(table, standardCentreTable8x8[:])
	return table
}

// Option configures Weights via DefaultWeights() followed by New.
type Option func(*Weights)

// WithMaterial overrides one or more per-figure material weights.
func WithMaterial(m map[board.Figure]Weight) Option {
	return func(w *Weights) {
		for f, v := range m {
			w.Material[f] = v
		}
	}
}

// WithMultipliers overrides the checkmate/attack/defence/centre
// multipliers.
func WithMultipliers(checkmate, present, attack, defence, centre Weight) Option {
	return func(w *Weights) {
		w.CheckmateWeight = checkmate
		w.PiecePresentMult = present
		w.PieceAttackMult = attack
		w.PieceDefenceMult = defence
		w.CentreCellMult = centre
	}
}

// WithCentreTable overrides the centre-control weight table. table must
// have length board.Current().Count() or be nil to omit the term.
func WithCentreTable(table []Weight) Option {
	return func(w *Weights) {
		w.CentreTable = table
	}
}
