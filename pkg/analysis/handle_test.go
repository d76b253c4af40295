package analysis_test

import (
	"testing"

	"github.com/arcbishop/chesscore/pkg/analysis"
	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/arcbishop/chesscore/pkg/board/fen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefersComputationUntilFirstQuery(t *testing.T) {
	pos := board.NewInitial()
	before := board.ConstructedCount()
	h := analysis.New(pos, nil)

	assert.Equal(t, before, board.ConstructedCount(), "New must not derive any successor")
	assert.Same(t, pos, h.Position())
	assert.Len(t, h.Successors(), 20)
	assert.False(t, h.IsCheck())
}

func TestSuccessorsAreCachedAfterFirstCall(t *testing.T) {
	h := analysis.New(board.NewInitial(), nil)

	first := h.Successors()
	second := h.Successors()
	require.Len(t, first, 20)
	assert.Same(t, first[0], second[0])
	assert.Equal(t, len(first), len(second))
}

func TestIsCheckmateOnFoolsMate(t *testing.T) {
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	h := analysis.New(pos, nil)
	assert.True(t, h.IsCheck())
	assert.True(t, h.IsCheckmate())
	assert.False(t, h.IsStalemate())
	assert.Empty(t, h.Successors())
}

func TestIsStalemateWhenNoLegalMovesAndNotInCheck(t *testing.T) {
	// Classic stalemate: black king boxed into a8 with no checks and no
	// legal reply, white to move last put it there.
	pos, err := fen.Decode("k7/8/1Q6/8/8/8/8/K7 b - - 0 1")
	require.NoError(t, err)

	h := analysis.New(pos, nil)
	assert.False(t, h.IsCheck())
	assert.True(t, h.IsStalemate())
	assert.False(t, h.IsCheckmate())
	assert.Empty(t, h.Successors())
}

func TestEvaluateReflectsCheckmate(t *testing.T) {
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	h := analysis.New(pos, nil)
	assert.Negative(t, h.Evaluate(false), "white is mated, score must favour black")
}

func TestMaterialWeightInitialPositionIsZero(t *testing.T) {
	h := analysis.New(board.NewInitial(), nil)
	assert.Zero(t, h.MaterialWeight())
}

func TestPruneToKeepsOnlyTheChosenSuccessor(t *testing.T) {
	h := analysis.New(board.NewInitial(), nil)
	successors := h.Successors()
	require.Len(t, successors, 20)

	chosen := successors[3]
	h.PruneTo(chosen)

	pruned := h.Successors()
	require.Len(t, pruned, 1)
	assert.Same(t, chosen, pruned[0])
}
