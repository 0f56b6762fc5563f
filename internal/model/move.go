package model

import (
	"fmt"
	"time"
)

// Move is one entry of the append-only game log. Piece is the pre-move
// snapshot of the mover.
type Move struct {
	From          Position  `json:"from"`
	To            Position  `json:"to"`
	Piece         Piece     `json:"piece"`
	CapturedPiece *Piece    `json:"capturedPiece,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s → %s", m.Piece.Symbol(), m.From.Notation(), m.To.Notation())
}

type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}
