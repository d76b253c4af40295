package board

// promotionDefault is the figure a pawn promotes to when no choice is
// offered by the caller; spec default is Queen.
var promotionDefault = Queen

// SetPromotionDefault overrides the default promotion figure.
func SetPromotionDefault(f Figure) {
	promotionDefault = f
}

// NewInitial returns the standard starting position on the current board.
// Only meaningful for the default 8x8 geometry; non-standard board sizes
// should be built via fen.Decode.
func NewInitial() *Position {
	w, h := current.Width, current.Height
	squares := make([]Piece, current.Count())

	backRank := []Figure{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for f := 0; f < w && f < len(backRank); f++ {
		squares[NewSquare(f, 0)] = NewPiece(backRank[f], White)
		squares[NewSquare(f, h-1)] = NewPiece(backRank[f], Black)
		squares[NewSquare(f, 1)] = NewPiece(Pawn, White)
		squares[NewSquare(f, h-2)] = NewPiece(Pawn, Black)
	}

	p := &Position{
		squares:    squares,
		turn:       White,
		moveNumber: 1,
		enPassant:  NoSquare(),
		castling:   NewCastlingRights(),
		kingSquare: [2]Square{NewSquare(4, 0), NewSquare(4, h-1)},
	}
	constructed.Add(1)
	return p
}

// FromParts builds a root Position directly from already-decoded fields.
// Used by the FEN codec; not intended for general use outside a Position
// Factory implementation.
func FromParts(squares []Piece, turn Color, moveNumber int, enPassant Square, castling CastlingRights, kingSquare [2]Square) *Position {
	p := &Position{
		squares:    squares,
		turn:       turn,
		moveNumber: moveNumber,
		enPassant:  enPassant,
		castling:   castling,
		kingSquare: kingSquare,
	}
	constructed.Add(1)
	return p
}

// deriveCore applies a single from->to piece transfer and returns the
// resulting child, with promotion, castling-right clearing, king-square
// tracking, turn flip and move-number increment applied. The child's
// en-passant target is always reset to NoSquare(); callers that need a
// target set it afterwards (see DerivePawnDoubleStep).
func (p *Position) deriveCore(from, to Square) *Position {
	squares := make([]Piece, len(p.squares))
	copy(squares, p.squares)

	moving := squares[from]
	squares[to] = moving
	squares[from] = Empty

	if moving.Figure == Pawn {
		backRank := 0
		if moving.Color == White {
			backRank = current.Height - 1
		}
		if to.Rank() == backRank {
			squares[to] = NewPiece(promotionDefault, moving.Color)
		}
	}

	rights := p.castling.withoutRookAt(from).withoutRookAt(to)
	if moving.Figure == King {
		rights = rights.withoutKing(moving.Color)
	}

	kingSquare := p.kingSquare
	if moving.Figure == King {
		kingSquare[moving.Color] = to
	}

	child := &Position{
		squares:    squares,
		turn:       p.turn.Opponent(),
		moveNumber: p.moveNumber + 1,
		enPassant:  NoSquare(),
		castling:   rights,
		kingSquare: kingSquare,
		parent:     p,
	}
	constructed.Add(1)
	return child
}

// Derive returns a child position with the piece at from moved to to,
// capturing any piece already at to. Promotion, castling-right clearing
// and en-passant reset are applied per spec §4.2. from must hold a piece
// and to must be on-board; violating this is a programmer error.
func Derive(parent *Position, from, to Square) *Position {
	if !from.Valid() || parent.At(from).IsEmpty() || !to.Valid() {
		panic("board: illegal derivation: from must hold a piece and to must be on-board")
	}
	return parent.deriveCore(from, to)
}

// DeriveCastle returns a child position with the king moved from kingFrom
// to kingTo and the rook moved from rookFrom to rookTo in one atomic step
// (spec §4.2's two-transfer derivation).
func DeriveCastle(parent *Position, kingFrom, kingTo, rookFrom, rookTo Square) *Position {
	if !kingFrom.Valid() || !kingTo.Valid() || !rookFrom.Valid() || !rookTo.Valid() {
		panic("board: illegal castling derivation: all four squares must be on-board")
	}
	squares := make([]Piece, len(parent.squares))
	copy(squares, parent.squares)

	king := squares[kingFrom]
	rook := squares[rookFrom]
	squares[kingFrom] = Empty
	squares[rookFrom] = Empty
	squares[kingTo] = king
	squares[rookTo] = rook

	rights := parent.castling.withoutKing(king.Color)
	kingSquare := parent.kingSquare
	kingSquare[king.Color] = kingTo

	child := &Position{
		squares:    squares,
		turn:       parent.turn.Opponent(),
		moveNumber: parent.moveNumber + 1,
		enPassant:  NoSquare(),
		castling:   rights,
		kingSquare: kingSquare,
		parent:     parent,
	}
	constructed.Add(1)
	return child
}

// DerivePawnDoubleStep derives a normal move and additionally sets the
// child's en-passant target to the square the pawn crossed. Used only by
// the Move Engine's pawn double-step phase (spec §4.3 phase 2); the
// mutation happens before the child is returned to any caller, so the
// Position type remains effectively immutable from outside this package.
func DerivePawnDoubleStep(parent *Position, from, to, crossed Square) *Position {
	child := Derive(parent, from, to)
	child.enPassant = crossed
	return child
}

// DeriveEnPassant derives a capturing move for the capturing pawn and
// additionally empties the square of the pawn captured en passant (spec
// §4.3 phase 3). Like DerivePawnDoubleStep, the extra mutation happens
// before the child escapes to any caller.
func DeriveEnPassant(parent *Position, from, to, captured Square) *Position {
	child := Derive(parent, from, to)
	child.squares[captured] = Empty
	return child
}
