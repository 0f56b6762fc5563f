package model

import (
	"errors"
	"fmt"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

type PieceColor string

const (
	White PieceColor = "white"
	Black PieceColor = "black"
)

func (c PieceColor) Opposite() PieceColor {
	if c == White {
		return Black
	}
	return White
}

// ErrInvalidNotation is returned when a square name like "e2" cannot be parsed.
var ErrInvalidNotation = errors.New("invalid notation")

var pieceSymbols = map[PieceColor]map[PieceType]string{
	White: {King: "♔", Queen: "♕", Rook: "♖", Bishop: "♗", Knight: "♘", Pawn: "♙"},
	Black: {King: "♚", Queen: "♛", Rook: "♜", Bishop: "♝", Knight: "♞", Pawn: "♟"},
}

// Piece values placed on a published Board are never mutated; a move
// places a fresh copy on the destination square.
type Piece struct {
	Type     PieceType  `json:"type"`
	Color    PieceColor `json:"color"`
	HasMoved bool       `json:"hasMoved"`
	Position Position   `json:"position"`
}

func (p Piece) Symbol() string {
	return pieceSymbols[p.Color][p.Type]
}

// Position addresses a square top-down: row 0 is black's back rank and
// row 7 is white's.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < 8 && pos.Col >= 0 && pos.Col < 8
}

func (p Position) add(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) Notation() string {
	if !InBounds(p) {
		return ""
	}
	return fmt.Sprintf("%c%d", p.Col+'a', 8-p.Row)
}

func (p Position) String() string {
	return p.Notation()
}

func ParsePosition(n string) (Position, error) {
	if len(n) != 2 {
		return Position{}, ErrInvalidNotation
	}
	pos := Position{Row: 8 - int(n[1]-'0'), Col: int(n[0]) - 'a'}
	if n[1] < '1' || n[1] > '8' || !InBounds(pos) {
		return Position{}, ErrInvalidNotation
	}
	return pos, nil
}

// Board is a value type: assigning it copies every cell.
type Board [8][8]*Piece

func (b *Board) At(pos Position) *Piece {
	if !InBounds(pos) {
		return nil
	}
	return b[pos.Row][pos.Col]
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewBoard() Board {
	var board Board
	for col, pieceType := range backRank {
		board[0][col] = &Piece{Type: pieceType, Color: Black, Position: Position{Row: 0, Col: col}}
		board[1][col] = &Piece{Type: Pawn, Color: Black, Position: Position{Row: 1, Col: col}}
		board[6][col] = &Piece{Type: Pawn, Color: White, Position: Position{Row: 6, Col: col}}
		board[7][col] = &Piece{Type: pieceType, Color: White, Position: Position{Row: 7, Col: col}}
	}
	return board
}

// withMove returns a copy of b with the piece on from relocated to to.
// The moved piece is not touched; callers that need hasMoved/position
// updated pass a replacement.
func (b Board) withMove(from, to Position, moved *Piece) Board {
	b[to.Row][to.Col] = moved
	b[from.Row][from.Col] = nil
	return b
}
