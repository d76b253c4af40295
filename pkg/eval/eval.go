package eval

import (
	"context"

	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/seekerror/logw"
)

// Evaluator computes the signed positional score of a position given its
// attack maps, per a configured set of Weights.
type Evaluator struct {
	weights Weights
}

// New builds an Evaluator from DefaultWeights() adjusted by opts.
func New(opts ...Option) *Evaluator {
	w := DefaultWeights()
	for _, opt := range opts {
		opt(&w)
	}
	return &Evaluator{weights: w}
}

// Evaluate returns the signed score of pos given its attack maps and
// whether pos is checkmate. When log is true, the evaluation's terms are
// reported via logw, mirroring the reference analysis source's own
// logging gated by a boolean flag.
func (e *Evaluator) Evaluate(pos *board.Position, attacksWhite, attacksBlack []int, checkmate bool, log bool) Weight {
	side := pos.Turn()

	if checkmate {
		// The side to move has just been mated, so the score must favour
		// the winner (the opponent), scaled by move number to reward a
		// faster mate (spec §8's fool's-mate vector pins this sign: white
		// to move and mated yields -CheckmateWeight-move_number).
		winner := side.Opponent()
		score := Weight(winner.Sign()) * (e.weights.CheckmateWeight + Weight(pos.MoveNumber()))
		if log {
			logw.Infof(context.Background(), "eval: checkmate, side-to-move=%v move=%d score=%v", side, pos.MoveNumber(), score)
		}
		return score
	}

	material := e.weights.PiecePresentMult * e.material(pos)
	attackDefence := e.attackDefence(pos, attacksWhite, attacksBlack)
	centre := e.centreControl(pos, attacksWhite, attacksBlack)
	total := material + attackDefence + centre

	if log {
		logw.Infof(context.Background(), "eval: material=%v attack/defence=%v centre=%v total=%v", material, attackDefence, centre, total)
	}
	return total
}

// MaterialWeight returns pos's material balance under this Evaluator's own
// configured Weights (as set via WithMaterial), unlike the standalone
// Material function below which always uses DefaultWeights.
func (e *Evaluator) MaterialWeight(pos *board.Position) Weight {
	return e.material(pos)
}

func (e *Evaluator) material(pos *board.Position) Weight {
	var total Weight
	for s := 0; s < pos.Count(); s++ {
		piece := pos.At(board.Square(s))
		if piece.IsEmpty() || piece.Figure == board.King {
			continue
		}
		total += Weight(piece.Color.Sign()) * e.weights.Material[piece.Figure]
	}
	return total
}

func (e *Evaluator) attackDefence(pos *board.Position, attacksWhite, attacksBlack []int) Weight {
	var total Weight
	for s := 0; s < pos.Count(); s++ {
		piece := pos.At(board.Square(s))
		if piece.IsEmpty() {
			continue
		}
		dom := dominator(attacksWhite[s], attacksBlack[s])
		mult := e.weights.PieceAttackMult
		if dom == piece.Color.Sign() {
			mult = e.weights.PieceDefenceMult
		}
		total += Weight(dom) * e.weights.Material[piece.Figure] * mult
	}
	return total
}

func (e *Evaluator) centreControl(pos *board.Position, attacksWhite, attacksBlack []int) Weight {
	if e.weights.CentreTable == nil {
		return 0
	}
	var total Weight
	for s := 0; s < pos.Count(); s++ {
		dom := dominator(attacksWhite[s], attacksBlack[s])
		total += Weight(dom) * e.weights.CentreTable[s] * e.weights.CentreCellMult
	}
	return total
}

// dominator is sign(white attackers - black attackers): +1, 0 or -1.
func dominator(white, black int) int {
	d := white - black
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}

// Material returns the unweighted material balance of pos using the
// default per-figure weights, independent of any configured Evaluator.
// Used by the Move Engine purely to order successors (spec §4.3 phase 5);
// its absolute scale is irrelevant, only the relative ordering matters.
func Material(pos *board.Position) Weight {
	d := DefaultWeights()
	var total Weight
	for s := 0; s < pos.Count(); s++ {
		piece := pos.At(board.Square(s))
		if piece.IsEmpty() || piece.Figure == board.King {
			continue
		}
		total += Weight(piece.Color.Sign()) * d.Material[piece.Figure]
	}
	return total
}

// GamePhase is derived from the count of non-pawn, non-king pieces.
type GamePhase int

const (
	Opening GamePhase = iota
	Middlegame
	Endgame
)

// GamePhaseOf classifies pos per spec §4.4: <=4 minor/major pieces is
// endgame, <=10 is middlegame, otherwise opening.
func GamePhaseOf(pos *board.Position) GamePhase {
	n := 0
	for s := 0; s < pos.Count(); s++ {
		piece := pos.At(board.Square(s))
		if piece.IsEmpty() || piece.Figure == board.Pawn || piece.Figure == board.King {
			continue
		}
		n++
	}
	switch {
	case n <= 4:
		return Endgame
	case n <= 10:
		return Middlegame
	default:
		return Opening
	}
}

// KingPositionWeight is the optional king-safety/centralisation term (spec
// §4.4, §9): not summed into Evaluate's default result, available for a
// search driver to add explicitly.
func KingPositionWeight(pos *board.Position, attacksWhite, attacksBlack []int, phase GamePhase) Weight {
	if phase == Endgame {
		return Weight(centralisation(pos.KingSquare(board.White)) - centralisation(pos.KingSquare(board.Black)))
	}
	return kingShelter(pos, board.White, attacksWhite, attacksBlack) + kingShelter(pos, board.Black, attacksWhite, attacksBlack)
}

func centralisation(sq board.Square) int {
	params := board.Current()
	distFile := min(sq.File(), params.Width-1-sq.File())
	distRank := min(sq.Rank(), params.Height-1-sq.Rank())
	return distFile + distRank
}

// kingShelter sums the dominators of the eight squares neighbouring
// colour's king, counting an off-board neighbour as a natural wall (fully
// sheltering: equivalent to a dominator matching colour).
func kingShelter(pos *board.Position, colour board.Color, attacksWhite, attacksBlack []int) Weight {
	king := pos.KingSquare(colour)
	var total Weight
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n, ok := king.Offset(dx, dy)
			if !ok {
				total += Weight(colour.Sign())
				continue
			}
			total += Weight(dominator(attacksWhite[n], attacksBlack[n]))
		}
	}
	return total
}
