package board_test

import (
	"testing"

	"github.com/arcbishop/chesscore/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquareRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		file int
		rank int
	}{
		{"a1", 0, 0},
		{"e4", 4, 3},
		{"h8", 7, 7},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			sq, ok := board.ParseSquare(tc.text)
			require.True(t, ok)
			assert.Equal(t, tc.file, sq.File())
			assert.Equal(t, tc.rank, sq.Rank())
			assert.Equal(t, tc.text, sq.String())
		})
	}
}

func TestParseSquareSentinel(t *testing.T) {
	sq, ok := board.ParseSquare("-")
	assert.True(t, ok)
	assert.False(t, sq.Valid())
	assert.Equal(t, "-", sq.String())
}

func TestParseSquareMalformed(t *testing.T) {
	_, ok := board.ParseSquare("z9")
	assert.False(t, ok)
}

func TestOffset(t *testing.T) {
	e4, _ := board.ParseSquare("e4")

	e5, ok := e4.Offset(0, 1)
	require.True(t, ok)
	assert.Equal(t, "e5", e5.String())

	_, ok = e4.Offset(10, 0)
	assert.False(t, ok)
}
