// Package moveengine enumerates a position's legal successors and derives
// its attack maps and check status (spec §4.3).
package moveengine

import (
	"sort"

	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/arcbishop/chesscore/pkg/eval"
)

// Action is the classification of one ray-walk step, replacing the
// reference source's 2x2 (side-to-move, piece-colour) callback matrix with
// a single enum consumed by a switch (spec §9).
type Action int

const (
	MoveToEmpty Action = iota
	CaptureOwn
	CaptureOppKingThreat
	DefendOrAttack
)

// Result is the Move Engine's output for one position.
type Result struct {
	Successors   []*board.Position
	AttacksWhite []int
	AttacksBlack []int
	Check        bool
}

// rayMode selects how walkRaw classifies an occupied destination square.
type rayMode int

const (
	modeNormal  rayMode = iota // symmetric pieces: any template covers move + capture
	modePush                   // pawn push: blocked squares end the ray silently
	modeCapture                // pawn capture: empty destination still "defends" it
)

type rawKind int

const (
	rawMoveEmpty rawKind = iota
	rawCapture
	rawDefend
)

// walkRaw steps along ray from `from`, belonging to a piece of colour
// mover, emitting a raw classification per destination until the ray ends
// (off-board, blocked, or a capture/defend terminates it).
func walkRaw(pos *board.Position, from board.Square, ray board.RayFamily, mover board.Color, mode rayMode, emit func(rawKind, board.Square)) {
	step := 1
	for {
		to, ok := from.Offset(ray.DX*step, ray.DY*step)
		if !ok {
			return
		}
		occupant := pos.At(to)

		switch {
		case occupant.IsEmpty():
			if mode == modeCapture {
				emit(rawDefend, to)
				return
			}
			emit(rawMoveEmpty, to)
		case mode == modePush:
			return // blocked push: no attack, no candidate, ray ends silently
		case occupant.Color == mover:
			emit(rawDefend, to)
			return
		default:
			emit(rawCapture, to)
			return
		}

		if !ray.Unlimited {
			return
		}
		step++
	}
}

// classify turns a raw ray-walk outcome into one of the four named
// actions, given which colour is moving the piece and which colour is
// actually on move. Returns ok=false when the raw outcome carries no
// meaning for this (mover, side) pairing (a "move to empty" by a piece
// whose colour isn't on move generates no candidate and isn't an attack).
func classify(raw rawKind, mover, side board.Color) (Action, bool) {
	switch raw {
	case rawMoveEmpty:
		if mover == side {
			return MoveToEmpty, true
		}
		return 0, false
	case rawCapture:
		if mover == side {
			return CaptureOwn, true
		}
		return CaptureOppKingThreat, true
	case rawDefend:
		return DefendOrAttack, true
	}
	return 0, false
}

// Generate produces pos's legal successors, attack maps and check flag.
func Generate(pos *board.Position) Result {
	n := pos.Count()
	attacksWhite := make([]int, n)
	attacksBlack := make([]int, n)
	check := false
	var successors []*board.Position
	side := pos.Turn()

	bump := func(c board.Color, target board.Square) {
		if c == board.White {
			attacksWhite[target]++
		} else {
			attacksBlack[target]++
		}
	}

	for s := 0; s < n; s++ {
		from := board.Square(s)
		piece := pos.At(from)
		if piece.IsEmpty() {
			continue
		}
		mover := piece.Color
		params := board.ParamsFor(piece.Figure, mover)

		process := func(raw rawKind, target board.Square) {
			action, ok := classify(raw, mover, side)
			if !ok {
				return
			}
			switch action {
			case MoveToEmpty:
				child := board.Derive(pos, from, target)
				if isLegal(child, mover) {
					successors = append(successors, child)
				}
			case CaptureOwn:
				bump(mover, target)
				child := board.Derive(pos, from, target)
				if isLegal(child, mover) {
					successors = append(successors, child)
				}
			case CaptureOppKingThreat:
				bump(mover, target)
				if pos.At(target).Figure == board.King {
					check = true
				}
			case DefendOrAttack:
				bump(mover, target)
			}
		}

		if params.Different {
			for _, ray := range params.NoTake {
				walkRaw(pos, from, ray, mover, modePush, process)
			}
			for _, ray := range params.Take {
				walkRaw(pos, from, ray, mover, modeCapture, process)
			}
		} else {
			for _, ray := range params.Any {
				walkRaw(pos, from, ray, mover, modeNormal, process)
			}
		}
	}

	generatePawnDoubleStep(pos, side, &successors)
	generateEnPassant(pos, side, attacksWhite, attacksBlack, &successors)
	generateCastling(pos, side, attacksWhite, attacksBlack, &successors)

	sort.SliceStable(successors, func(i, j int) bool {
		return eval.Material(successors[i]) < eval.Material(successors[j])
	})

	return Result{Successors: successors, AttacksWhite: attacksWhite, AttacksBlack: attacksBlack, Check: check}
}

// attacksByColor computes the attack/defence counts contributed by colour
// by's pieces alone. Used for the king-safety legality sub-pass.
func attacksByColor(pos *board.Position, by board.Color) []int {
	n := pos.Count()
	attacks := make([]int, n)
	emit := func(raw rawKind, target board.Square) {
		if raw == rawCapture || raw == rawDefend {
			attacks[target]++
		}
	}
	for s := 0; s < n; s++ {
		from := board.Square(s)
		piece := pos.At(from)
		if piece.IsEmpty() || piece.Color != by {
			continue
		}
		params := board.ParamsFor(piece.Figure, by)
		if params.Different {
			for _, ray := range params.Take {
				walkRaw(pos, from, ray, by, modeCapture, emit)
			}
		} else {
			for _, ray := range params.Any {
				walkRaw(pos, from, ray, by, modeNormal, emit)
			}
		}
	}
	return attacks
}

// isLegal runs the attack-generation pass named in spec §4.3 on child and
// asks whether the opponent of mover attacks mover's king.
func isLegal(child *board.Position, mover board.Color) bool {
	opponent := mover.Opponent()
	attacks := attacksByColor(child, opponent)
	return attacks[child.KingSquare(mover)] == 0
}
