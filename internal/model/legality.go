package model

// LegalMoves filters the pseudo-legal destinations of the piece on pos,
// dropping any that would leave its own king attacked.
func LegalMoves(pos Position, board *Board) []Position {
	legalMoves := []Position{}
	for _, to := range PseudoLegalMoves(pos, board) {
		if !WouldExposeKing(pos, to, board) {
			legalMoves = append(legalMoves, to)
		}
	}
	return legalMoves
}

// WouldExposeKing simulates from->to on a copy of board and reports whether
// the mover's king is then in check. IsInCheck only looks at pseudo-legal
// attacks, so this never recurses back into LegalMoves.
func WouldExposeKing(from, to Position, board *Board) bool {
	piece := board.At(from)
	if piece == nil {
		return false
	}
	simulated := board.withMove(from, to, piece)
	return IsInCheck(piece.Color, &simulated)
}
