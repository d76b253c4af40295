package moveengine

import "github.com/arcbishop/chesscore/pkg/board"

// generatePawnDoubleStep implements spec §4.3 phase 2: pawns still on
// their starting rank may advance two squares if both the one-step and
// two-step squares ahead are empty; the en-passant target is set to the
// crossed square.
func generatePawnDoubleStep(pos *board.Position, side board.Color, successors *[]*board.Position) {
	params := board.Current()
	homeRank := 1
	forward := 1
	if side == board.Black {
		homeRank = params.Height - 2
		forward = -1
	}

	for file := 0; file < params.Width; file++ {
		from := board.NewSquare(file, homeRank)
		piece := pos.At(from)
		if piece.IsEmpty() || piece.Figure != board.Pawn || piece.Color != side {
			continue
		}

		oneStep, ok := from.Offset(0, forward)
		if !ok || !pos.At(oneStep).IsEmpty() {
			continue
		}
		twoStep, ok := from.Offset(0, 2*forward)
		if !ok || !pos.At(twoStep).IsEmpty() {
			continue
		}

		child := board.DerivePawnDoubleStep(pos, from, twoStep, oneStep)
		if isLegal(child, side) {
			*successors = append(*successors, child)
		}
	}
}

// generateEnPassant implements spec §4.3 phase 3. Whenever a pawn holds a
// legal en-passant capture, the captured pawn's square is also bumped into
// the capturing side's attack map, matching the reference source's own
// under-attack bookkeeping for that square.
func generateEnPassant(pos *board.Position, side board.Color, attacksWhite, attacksBlack []int, successors *[]*board.Position) {
	target := pos.EnPassant()
	if !target.Valid() {
		return
	}

	forward := 1
	if side == board.Black {
		forward = -1
	}
	capturingRank := target.Rank() - forward

	bump := func(s board.Square) {
		if side == board.White {
			attacksWhite[s]++
		} else {
			attacksBlack[s]++
		}
	}

	params := board.Current()
	for _, df := range [2]int{-1, 1} {
		file := target.File() + df
		if file < 0 || file >= params.Width {
			continue
		}
		from := board.NewSquare(file, capturingRank)
		piece := pos.At(from)
		if piece.IsEmpty() || piece.Figure != board.Pawn || piece.Color != side {
			continue
		}

		captured := board.NewSquare(target.File(), capturingRank)
		child := board.DeriveEnPassant(pos, from, target, captured)
		if isLegal(child, side) {
			*successors = append(*successors, child)
			bump(captured)
		}
	}
}

// generateCastling implements spec §4.3 phase 4, gated on the attack maps
// computed in phase 1.
func generateCastling(pos *board.Position, side board.Color, attacksWhite, attacksBlack []int, successors *[]*board.Position) {
	opponentAttacks := attacksBlack
	if side == board.Black {
		opponentAttacks = attacksWhite
	}

	king := pos.KingSquare(side)
	rank := king.Rank()
	params := board.Current()

	for _, cs := range [2]board.CastlingSide{board.QueenSide, board.KingSide} {
		rook := pos.Castling().Rook(side, cs)
		if !rook.Valid() {
			continue
		}
		if opponentAttacks[king] > 0 {
			continue
		}

		dir := 1
		if cs == board.QueenSide {
			dir = -1
		}
		passOver, ok := king.Offset(dir, 0)
		if !ok || opponentAttacks[passOver] > 0 {
			continue
		}

		lo, hi := min(king.File(), rook.File())+1, max(king.File(), rook.File())-1
		blocked := false
		for f := lo; f <= hi; f++ {
			if !pos.At(board.NewSquare(f, rank)).IsEmpty() {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		standard := king.File() >= 2
		if cs == board.KingSide {
			standard = king.File() < params.Width-2
		}

		if standard {
			kingTo, _ := king.Offset(2*dir, 0)
			child := board.DeriveCastle(pos, king, kingTo, rook, passOver)
			if isLegal(child, side) {
				*successors = append(*successors, child)
			}
			continue
		}

		// Degenerate edge-of-board branch (spec §9 open question):
		// unreachable when the king starts on its standard 8x8 square.
		// Preserved for parity with the source, which skips the
		// king-safety re-test here and relies solely on the non-attack
		// check above.
		child := board.DeriveCastle(pos, king, passOver, rook, king)
		*successors = append(*successors, child)
	}
}
