// Package render draws game snapshots for terminal front ends.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/benbeisheim/hotseat-chess/internal/model"
	"github.com/fatih/color"
)

type Options struct {
	Color      bool
	ShowCoords bool
}

type Renderer struct {
	opts     Options
	selected *color.Color
	target   *color.Color
	lastMove *color.Color
	check    *color.Color
	plain    *color.Color
}

func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		opts:     opts,
		selected: color.New(color.BgYellow, color.FgBlack),
		target:   color.New(color.BgGreen, color.FgBlack),
		lastMove: color.New(color.BgCyan, color.FgBlack),
		check:    color.New(color.BgRed, color.FgWhite),
		plain:    color.New(color.Reset),
	}
	for _, c := range []*color.Color{r.selected, r.target, r.lastMove, r.check, r.plain} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Board writes the grid top-down, white's back rank last.
func (r *Renderer) Board(w io.Writer, s model.GameState) error {
	var sb strings.Builder
	files := "  a b c d e f g h"
	if r.opts.ShowCoords {
		sb.WriteString(files + "\n")
	}
	for row := 0; row < 8; row++ {
		if r.opts.ShowCoords {
			fmt.Fprintf(&sb, "%d ", 8-row)
		}
		for col := 0; col < 8; col++ {
			pos := model.Position{Row: row, Col: col}
			sb.WriteString(r.square(s, pos))
			if col < 7 {
				sb.WriteString(" ")
			}
		}
		if r.opts.ShowCoords {
			fmt.Fprintf(&sb, " %d", 8-row)
		}
		sb.WriteString("\n")
	}
	if r.opts.ShowCoords {
		sb.WriteString(files + "\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Renderer) square(s model.GameState, pos model.Position) string {
	glyph := "·"
	piece := s.Board.At(pos)
	if piece != nil {
		glyph = piece.Symbol()
	}

	switch {
	case s.SelectedPosition != nil && *s.SelectedPosition == pos:
		return r.selected.Sprint(glyph)
	case isTarget(s, pos):
		if piece == nil {
			glyph = "•"
		}
		return r.target.Sprint(glyph)
	case s.IsCheck && piece != nil && piece.Type == model.King && piece.Color == s.CurrentPlayer:
		return r.check.Sprint(glyph)
	case isLastMove(s, pos):
		return r.lastMove.Sprint(glyph)
	default:
		return r.plain.Sprint(glyph)
	}
}

func isTarget(s model.GameState, pos model.Position) bool {
	for _, move := range s.ValidMoves {
		if move == pos {
			return true
		}
	}
	return false
}

func isLastMove(s model.GameState, pos model.Position) bool {
	last := s.LastMove()
	return last != nil && (last.From == pos || last.To == pos)
}

// Status is the one-line summary shown under the board.
func Status(s model.GameState) string {
	switch {
	case s.GameEnded && s.Winner != nil:
		return fmt.Sprintf("Checkmate! %s wins", titleCase(*s.Winner))
	case !s.GameStarted:
		return "Press start to begin"
	case s.IsCheck:
		return fmt.Sprintf("%s to move (check)", titleCase(s.CurrentPlayer))
	default:
		return fmt.Sprintf("%s to move", titleCase(s.CurrentPlayer))
	}
}

func titleCase(c model.PieceColor) string {
	name := string(c)
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
