package model

import (
	"encoding/json"
	"time"
)

type Phase string

const (
	PhaseNoSelection   Phase = "noSelection"
	PhasePieceSelected Phase = "pieceSelected"
	PhaseGameEnded     Phase = "gameEnded"
)

// GameState is an immutable snapshot. Every operation returns a new value
// and leaves the receiver untouched.
type GameState struct {
	Board            Board       `json:"board"`
	CurrentPlayer    PieceColor  `json:"currentPlayer"`
	SelectedPiece    *Piece      `json:"selectedPiece"`
	SelectedPosition *Position   `json:"selectedPosition"`
	ValidMoves       []Position  `json:"validMoves"`
	IsCheck          bool        `json:"isCheck"`
	IsCheckmate      bool        `json:"isCheckmate"`
	Moves            []Move      `json:"moves"`
	GameStarted      bool        `json:"gameStarted"`
	GameEnded        bool        `json:"gameEnded"`
	Winner           *PieceColor `json:"winner,omitempty"`
}

func NewGameState() GameState {
	return GameState{
		Board:            NewBoard(),
		CurrentPlayer:    White,
		SelectedPiece:    nil,
		SelectedPosition: nil,
		ValidMoves:       make([]Position, 0),
		IsCheck:          false,
		IsCheckmate:      false,
		Moves:            make([]Move, 0),
		GameStarted:      false,
		GameEnded:        false,
		Winner:           nil,
	}
}

func (s GameState) Phase() Phase {
	switch {
	case s.GameEnded:
		return PhaseGameEnded
	case s.SelectedPosition != nil:
		return PhasePieceSelected
	default:
		return PhaseNoSelection
	}
}

func (s GameState) Start() GameState {
	s.GameStarted = true
	return s
}

// Reset discards the receiver entirely, history included.
func (s GameState) Reset() GameState {
	return NewGameState()
}

// SelectSquare is the single input event of the turn controller. Clicks
// that do not fit the current phase return the receiver unchanged.
func (s GameState) SelectSquare(pos Position) GameState {
	if s.GameEnded || !InBounds(pos) {
		return s
	}
	piece := s.Board.At(pos)

	if s.SelectedPosition == nil {
		if piece != nil && piece.Color == s.CurrentPlayer {
			return s.selectPiece(pos)
		}
		return s
	}

	if s.isValidMove(pos) {
		return s.makeMove(*s.SelectedPosition, pos)
	}
	if piece != nil && piece.Color == s.CurrentPlayer {
		return s.selectPiece(pos)
	}
	return s.deselectPiece()
}

func (s GameState) isValidMove(to Position) bool {
	for _, move := range s.ValidMoves {
		if move == to {
			return true
		}
	}
	return false
}

func (s GameState) selectPiece(pos Position) GameState {
	piece := *s.Board.At(pos)
	s.SelectedPiece = &piece
	s.SelectedPosition = &pos
	s.ValidMoves = LegalMoves(pos, &s.Board)
	return s
}

func (s GameState) deselectPiece() GameState {
	s.SelectedPiece = nil
	s.SelectedPosition = nil
	s.ValidMoves = make([]Position, 0)
	return s
}

func (s GameState) makeMove(from, to Position) GameState {
	piece := s.Board.At(from)
	if piece == nil {
		return s
	}
	moved := *piece
	moved.HasMoved = true
	moved.Position = to

	move := Move{
		From:      from,
		To:        to,
		Piece:     *piece,
		Timestamp: time.Now(),
	}
	if captured := s.Board.At(to); captured != nil {
		capturedCopy := *captured
		move.CapturedPiece = &capturedCopy
	}

	mover := s.CurrentPlayer
	s.Board = s.Board.withMove(from, to, &moved)
	s.CurrentPlayer = mover.Opposite()

	// copy before appending so earlier snapshots never share a backing array
	moves := make([]Move, len(s.Moves), len(s.Moves)+1)
	copy(moves, s.Moves)
	s.Moves = append(moves, move)

	s.IsCheck = IsInCheck(s.CurrentPlayer, &s.Board)
	s.IsCheckmate = s.IsCheck && IsCheckmate(s.CurrentPlayer, &s.Board)
	s.GameEnded = s.IsCheckmate
	s.Winner = nil
	if s.IsCheckmate {
		s.Winner = &mover
	}
	return s.deselectPiece()
}

// LastMove returns the most recent log entry, or nil before the first move.
func (s GameState) LastMove() *Move {
	if len(s.Moves) == 0 {
		return nil
	}
	last := s.Moves[len(s.Moves)-1]
	return &last
}

// CapturedPieces groups captured pieces by the color that took them.
func (s GameState) CapturedPieces() CapturedPieces {
	captured := CapturedPieces{
		White: make([]Piece, 0),
		Black: make([]Piece, 0),
	}
	for _, move := range s.Moves {
		if move.CapturedPiece == nil {
			continue
		}
		switch move.Piece.Color {
		case White:
			captured.White = append(captured.White, *move.CapturedPiece)
		case Black:
			captured.Black = append(captured.Black, *move.CapturedPiece)
		}
	}
	return captured
}

// MarshalJSON publishes the derived last move and captured pieces alongside
// the snapshot fields.
func (s GameState) MarshalJSON() ([]byte, error) {
	type snapshot GameState
	return json.Marshal(struct {
		snapshot
		LastMove       *Move          `json:"lastMove"`
		CapturedPieces CapturedPieces `json:"capturedPieces"`
	}{
		snapshot:       snapshot(s),
		LastMove:       s.LastMove(),
		CapturedPieces: s.CapturedPieces(),
	})
}
