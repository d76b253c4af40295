// Package fen decodes and encodes Forsyth-Edwards Notation, the only
// external textual form the analysis core consumes (spec §6).
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/arcbishop/chesscore/pkg/board"
)

// ErrMalformedFEN is wrapped into every parse error so callers can test
// for it with errors.Is.
var ErrMalformedFEN = errors.New("fen: malformed FEN")

// Decode parses a FEN string into a root Position. Board dimensions are
// taken from board.Current(); the piece-placement field must describe
// exactly that many ranks and files.
func Decode(text string) (*board.Position, error) {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return nil, fmt.Errorf("%w: expected at least 4 space-separated fields, got %d", ErrMalformedFEN, len(fields))
	}

	placement, side, castling, enpassant := fields[0], fields[1], fields[2], fields[3]

	squares, kingSquare, err := decodePlacement(placement)
	if err != nil {
		return nil, err
	}

	turn, err := decodeSide(side)
	if err != nil {
		return nil, err
	}

	rights, err := decodeCastling(castling)
	if err != nil {
		return nil, err
	}

	ep, err := decodeEnPassant(enpassant)
	if err != nil {
		return nil, err
	}

	moveNumber := 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil {
			moveNumber = 2*(n-1) + 1
			if turn == board.Black {
				moveNumber++
			}
		}
	}

	return board.FromParts(squares, turn, moveNumber, ep, rights, kingSquare), nil
}

func decodePlacement(placement string) ([]board.Piece, [2]board.Square, error) {
	params := board.Current()
	squares := make([]board.Piece, params.Count())
	var kingSquare [2]board.Square

	ranks := strings.Split(placement, "/")
	if len(ranks) != params.Height {
		return nil, kingSquare, fmt.Errorf("%w: expected %d ranks, got %d", ErrMalformedFEN, params.Height, len(ranks))
	}

	for i, rankText := range ranks {
		rank := params.Height - 1 - i
		file := 0
		for _, r := range rankText {
			switch {
			case unicode.IsDigit(r):
				file += int(r - '0')
			case unicode.IsLetter(r):
				piece, ok := board.ParsePiece(byte(r))
				if !ok {
					return nil, kingSquare, fmt.Errorf("%w: unrecognized piece letter %q", ErrMalformedFEN, r)
				}
				if file >= params.Width {
					return nil, kingSquare, fmt.Errorf("%w: rank %d overflows board width", ErrMalformedFEN, i)
				}
				sq := board.NewSquare(file, rank)
				squares[sq] = piece
				if piece.Figure == board.King {
					kingSquare[piece.Color] = sq
				}
				file++
			default:
				return nil, kingSquare, fmt.Errorf("%w: unexpected character %q in piece placement", ErrMalformedFEN, r)
			}
		}
		if file != params.Width {
			return nil, kingSquare, fmt.Errorf("%w: rank %d has %d files, want %d", ErrMalformedFEN, i, file, params.Width)
		}
	}
	return squares, kingSquare, nil
}

func decodeSide(side string) (board.Color, error) {
	switch side {
	case "w":
		return board.White, nil
	case "b":
		return board.Black, nil
	default:
		return board.White, fmt.Errorf("%w: side to move must be 'w' or 'b', got %q", ErrMalformedFEN, side)
	}
}

func decodeCastling(text string) (board.CastlingRights, error) {
	rights := board.NoCastlingRights()
	if text == "-" {
		return rights, nil
	}
	for _, r := range text {
		switch r {
		case 'K':
			rights = rights.WithRook(board.White, board.KingSide, board.NewSquare(board.Current().Width-1, 0))
		case 'Q':
			rights = rights.WithRook(board.White, board.QueenSide, board.NewSquare(0, 0))
		case 'k':
			rights = rights.WithRook(board.Black, board.KingSide, board.NewSquare(board.Current().Width-1, board.Current().Height-1))
		case 'q':
			rights = rights.WithRook(board.Black, board.QueenSide, board.NewSquare(0, board.Current().Height-1))
		default:
			return rights, fmt.Errorf("%w: unexpected castling character %q", ErrMalformedFEN, r)
		}
	}
	return rights, nil
}

func decodeEnPassant(text string) (board.Square, error) {
	sq, ok := board.ParseSquare(text)
	if !ok {
		return board.NoSquare(), fmt.Errorf("%w: invalid en-passant field %q", ErrMalformedFEN, text)
	}
	return sq, nil
}

// Encode renders p as a FEN string.
func Encode(p *board.Position) string {
	var b strings.Builder
	params := board.Current()
	for rank := params.Height - 1; rank >= 0; rank-- {
		run := 0
		for file := 0; file < params.Width; file++ {
			piece := p.At(board.NewSquare(file, rank))
			if piece.IsEmpty() {
				run++
				continue
			}
			if run > 0 {
				fmt.Fprintf(&b, "%d", run)
				run = 0
			}
			b.WriteString(piece.String())
		}
		if run > 0 {
			fmt.Fprintf(&b, "%d", run)
		}
		if rank > 0 {
			b.WriteByte('/')
		}
	}

	b.WriteByte(' ')
	if p.Turn() == board.White {
		b.WriteByte('w')
	} else {
		b.WriteByte('b')
	}

	b.WriteByte(' ')
	castling := castlingString(p.Castling())
	b.WriteString(castling)

	b.WriteByte(' ')
	b.WriteString(p.EnPassant().String())

	fmt.Fprintf(&b, " 0 %d", (p.MoveNumber()+1)/2)
	return b.String()
}

func castlingString(rights board.CastlingRights) string {
	var b strings.Builder
	if rights.Has(board.White, board.KingSide) {
		b.WriteByte('K')
	}
	if rights.Has(board.White, board.QueenSide) {
		b.WriteByte('Q')
	}
	if rights.Has(board.Black, board.KingSide) {
		b.WriteByte('k')
	}
	if rights.Has(board.Black, board.QueenSide) {
		b.WriteByte('q')
	}
	if b.Len() == 0 {
		return "-"
	}
	return b.String()
}
