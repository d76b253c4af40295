// Package analysis binds a Position to its lazily computed move-engine
// and evaluator outputs (spec §4.5).
package analysis

import (
	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/arcbishop/chesscore/pkg/eval"
	"github.com/arcbishop/chesscore/pkg/moveengine"
)

// Handle owns one position and its lazily computed successors, attack
// maps and check flag. Created per position visited by a search driver;
// cheap to discard once its owning frame retires.
type Handle struct {
	pos        *board.Position
	evaluator  *eval.Evaluator
	computed   bool
	successors []*board.Position
	attacks    [2][]int
	check      bool
}

// New binds pos to a fresh Handle. evaluator may be nil to use a
// default-configured one.
func New(pos *board.Position, evaluator *eval.Evaluator) *Handle {
	if evaluator == nil {
		evaluator = eval.New()
	}
	return &Handle{pos: pos, evaluator: evaluator}
}

func (h *Handle) ensure() {
	if h.computed {
		return
	}
	result := moveengine.Generate(h.pos)
	h.successors = result.Successors
	h.attacks[board.White] = result.AttacksWhite
	h.attacks[board.Black] = result.AttacksBlack
	h.check = result.Check
	h.computed = true
}

// Position returns the bound position.
func (h *Handle) Position() *board.Position {
	return h.pos
}

// Successors returns the ordered list of legal child positions, computing
// it on first call.
func (h *Handle) Successors() []*board.Position {
	h.ensure()
	return h.successors
}

// Attacks returns the attack/defence count array for colour c.
func (h *Handle) Attacks(c board.Color) []int {
	h.ensure()
	return h.attacks[c]
}

// IsCheck reports whether the side to move is in check.
func (h *Handle) IsCheck() bool {
	h.ensure()
	return h.check
}

// IsCheckmate reports whether the side to move is in check with no legal
// successors.
func (h *Handle) IsCheckmate() bool {
	h.ensure()
	return h.check && len(h.successors) == 0
}

// IsStalemate reports whether the side to move has no legal successors
// but is not in check.
func (h *Handle) IsStalemate() bool {
	h.ensure()
	return !h.check && len(h.successors) == 0
}

// Evaluate returns the position's signed score, logging its terms when
// log is true.
func (h *Handle) Evaluate(log bool) eval.Weight {
	h.ensure()
	return h.evaluator.Evaluate(h.pos, h.attacks[board.White], h.attacks[board.Black], h.IsCheckmate(), log)
}

// MaterialWeight returns the position's material balance under this
// Handle's own configured Evaluator (the same Weights Evaluate uses),
// not the package-default weights.
func (h *Handle) MaterialWeight() eval.Weight {
	return h.evaluator.MaterialWeight(h.pos)
}

// PruneTo keeps only chosen among the handle's successors, letting the
// rest (and anything that solely referenced them) become eligible for
// garbage collection (spec §9: "in garbage-collected languages, a plain
// reference suffices").
func (h *Handle) PruneTo(chosen *board.Position) {
	h.ensure()
	h.successors = []*board.Position{chosen}
}
