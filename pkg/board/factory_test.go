package board_test

import (
	"testing"

	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInitial(t *testing.T) {
	p := board.NewInitial()

	assert.Equal(t, board.White, p.Turn())
	assert.Equal(t, 1, p.MoveNumber())
	assert.False(t, p.EnPassant().Valid())
	assert.Nil(t, p.Parent())

	e1, _ := board.ParseSquare("e1")
	e8, _ := board.ParseSquare("e8")
	assert.Equal(t, e1, p.KingSquare(board.White))
	assert.Equal(t, e8, p.KingSquare(board.Black))

	a1, _ := board.ParseSquare("a1")
	assert.Equal(t, board.NewPiece(board.Rook, board.White), p.At(a1))

	assert.True(t, p.Castling().Has(board.White, board.KingSide))
	assert.True(t, p.Castling().Has(board.White, board.QueenSide))
	assert.True(t, p.Castling().Has(board.Black, board.KingSide))
	assert.True(t, p.Castling().Has(board.Black, board.QueenSide))
}

func TestDeriveUpdatesParentChildLinkage(t *testing.T) {
	root := board.NewInitial()
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")

	child := board.Derive(root, e2, e4)

	assert.Same(t, root, child.Parent())
	assert.Equal(t, board.Black, child.Turn())
	assert.Equal(t, root.MoveNumber()+1, child.MoveNumber())
	assert.True(t, child.At(e2).IsEmpty())
	assert.Equal(t, board.NewPiece(board.Pawn, board.White), child.At(e4))
}

func TestDeriveClearsCastlingRightsOnKingMove(t *testing.T) {
	root := board.NewInitial()
	e1, _ := board.ParseSquare("e1")
	e2, _ := board.ParseSquare("e2")

	// e2 still holds a white pawn, which the king simply replaces; the
	// factory does not itself validate legality, only mechanics.
	child := board.Derive(root, e1, e2)

	assert.False(t, child.Castling().Has(board.White, board.KingSide))
	assert.False(t, child.Castling().Has(board.White, board.QueenSide))
	assert.True(t, child.Castling().Has(board.Black, board.KingSide))
}

func TestDeriveClearsCastlingRightOnRookCapture(t *testing.T) {
	root := board.NewInitial()
	a1, _ := board.ParseSquare("a1")
	a8, _ := board.ParseSquare("a8")

	child := board.Derive(root, a8, a1) // black rook "captures" white's queenside rook

	assert.False(t, child.Castling().Has(board.White, board.QueenSide))
	assert.True(t, child.Castling().Has(board.White, board.KingSide))
}

func TestDerivePromotesPawnOnBackRank(t *testing.T) {
	squares := make([]board.Piece, board.Current().Count())
	e7, _ := board.ParseSquare("e7")
	e8, _ := board.ParseSquare("e8")
	wk, _ := board.ParseSquare("a1")
	bk, _ := board.ParseSquare("a8")
	squares[e7] = board.NewPiece(board.Pawn, board.White)
	squares[wk] = board.NewPiece(board.King, board.White)
	squares[bk] = board.NewPiece(board.King, board.Black)

	root := board.FromParts(squares, board.White, 1, board.NoSquare(), board.NoCastlingRights(), [2]board.Square{wk, bk})
	child := board.Derive(root, e7, e8)

	require.Equal(t, board.Queen, child.At(e8).Figure)
	assert.Equal(t, board.White, child.At(e8).Color)
}

func TestDeriveResetsEnPassant(t *testing.T) {
	root := board.NewInitial()
	e2, _ := board.ParseSquare("e2")
	e3, _ := board.ParseSquare("e3")
	e4, _ := board.ParseSquare("e4")

	withTarget := board.DerivePawnDoubleStep(root, e2, e4, e3)
	assert.Equal(t, e3, withTarget.EnPassant())

	e7, _ := board.ParseSquare("e7")
	e5, _ := board.ParseSquare("e5")
	again := board.Derive(withTarget, e7, e5)
	assert.False(t, again.EnPassant().Valid())
}

func TestReversibleDeriveRestoresMaterial(t *testing.T) {
	root := board.NewInitial()
	e2, _ := board.ParseSquare("e2")
	e3, _ := board.ParseSquare("e3")

	forward := board.Derive(root, e2, e3)
	back := board.Derive(forward, e3, e2)

	countPieces := func(p *board.Position) int {
		n := 0
		for s := 0; s < p.Count(); s++ {
			if !p.At(board.Square(s)).IsEmpty() {
				n++
			}
		}
		return n
	}
	assert.Equal(t, countPieces(root), countPieces(back))
}
