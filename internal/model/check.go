package model

func findKing(color PieceColor, board *Board) (Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board[row][col]
			if piece != nil && piece.Type == King && piece.Color == color {
				return Position{Row: row, Col: col}, true
			}
		}
	}
	return Position{}, false
}

// IsInCheck reports whether any opponent piece attacks color's king.
// A board without that king is never in check.
func IsInCheck(color PieceColor, board *Board) bool {
	king, ok := findKing(color, board)
	if !ok {
		return false
	}
	attacker := color.Opposite()
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board[row][col]
			if piece == nil || piece.Color != attacker {
				continue
			}
			for _, target := range PseudoLegalMoves(Position{Row: row, Col: col}, board) {
				if target == king {
					return true
				}
			}
		}
	}
	return false
}

// IsCheckmate reports whether color is in check with no legal move left.
// A missing king or a position that is not check (including stalemate)
// is never mate.
func IsCheckmate(color PieceColor, board *Board) bool {
	if !IsInCheck(color, board) {
		return false
	}
	return !hasLegalMove(color, board)
}

func hasLegalMove(color PieceColor, board *Board) bool {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			piece := board[row][col]
			if piece == nil || piece.Color != color {
				continue
			}
			if len(LegalMoves(Position{Row: row, Col: col}, board)) > 0 {
				return true
			}
		}
	}
	return false
}
