package eval_test

import (
	"testing"

	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/arcbishop/chesscore/pkg/board/fen"
	"github.com/arcbishop/chesscore/pkg/eval"
	"github.com/arcbishop/chesscore/pkg/moveengine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialBalanceInitialPositionIsZero(t *testing.T) {
	pos := board.NewInitial()
	assert.Equal(t, eval.Weight(0), eval.Material(pos))
}

func TestCheckmateScoreFavoursTheWinner(t *testing.T) {
	pos, err := fen.Decode("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	result := moveengine.Generate(pos)
	require.Empty(t, result.Successors)
	require.True(t, result.Check)

	e := eval.New()
	got := e.Evaluate(pos, result.AttacksWhite, result.AttacksBlack, true, false)

	winner := pos.Turn().Opponent()
	want := eval.Weight(winner.Sign()) * (eval.DefaultWeights().CheckmateWeight + eval.Weight(pos.MoveNumber()))
	assert.Equal(t, want, got)
	assert.Negative(t, got, "white (to move) has been mated, so the score must favour black")
}

func TestEvaluateIsAntisymmetricUnderMirror(t *testing.T) {
	pos, err := fen.Decode("r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1")
	require.NoError(t, err)

	result := moveengine.Generate(pos)
	e := eval.New()
	score := e.Evaluate(pos, result.AttacksWhite, result.AttacksBlack, false, false)

	mirrored := pos.Mirror()
	mirroredResult := moveengine.Generate(mirrored)
	mirroredScore := e.Evaluate(mirrored, mirroredResult.AttacksWhite, mirroredResult.AttacksBlack, false, false)

	assert.Equal(t, score, -mirroredScore)
}

func TestGamePhaseThresholds(t *testing.T) {
	initial := board.NewInitial()
	assert.Equal(t, eval.Opening, eval.GamePhaseOf(initial))

	endgame, err := fen.Decode("4k3/8/8/8/8/8/4P3/4K3 w - - 0 1")
	require.NoError(t, err)
	assert.Equal(t, eval.Endgame, eval.GamePhaseOf(endgame))
}
