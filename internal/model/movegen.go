package model

type direction struct {
	dRow, dCol int
}

var (
	rookDirs   = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	bishopDirs = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	knightDirs = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingDirs   = []direction{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
)

// moveGenerator returns pseudo-legal destinations for a piece of the given
// color standing on pos. Exposure of the mover's own king is ignored.
type moveGenerator func(pos Position, color PieceColor, board *Board) []Position

var generators = map[PieceType]moveGenerator{
	Pawn:   getPseudoPawnMoves,
	Rook:   getPseudoRookMoves,
	Knight: getPseudoKnightMoves,
	Bishop: getPseudoBishopMoves,
	Queen:  getPseudoQueenMoves,
	King:   getPseudoKingMoves,
}

// PseudoLegalMoves dispatches on the piece standing on pos. An empty or
// out-of-bounds square yields no moves.
func PseudoLegalMoves(pos Position, board *Board) []Position {
	piece := board.At(pos)
	if piece == nil {
		return []Position{}
	}
	gen, ok := generators[piece.Type]
	if !ok {
		return []Position{}
	}
	return gen(pos, piece.Color, board)
}

func pawnDirection(color PieceColor) (forward, startRow int) {
	if color == White {
		return -1, 6
	}
	return 1, 1
}

func getPseudoPawnMoves(pos Position, color PieceColor, board *Board) []Position {
	pawnMoves := []Position{}
	forward, startRow := pawnDirection(color)

	// Check move forward 1
	oneForward := pos.add(forward, 0)
	if InBounds(oneForward) && board.At(oneForward) == nil {
		pawnMoves = append(pawnMoves, oneForward)
		// Check move forward 2 from the starting row
		twoForward := pos.add(2*forward, 0)
		if pos.Row == startRow && InBounds(twoForward) && board.At(twoForward) == nil {
			pawnMoves = append(pawnMoves, twoForward)
		}
	}
	// Diagonal captures
	for _, dCol := range []int{-1, 1} {
		target := pos.add(forward, dCol)
		if captured := board.At(target); captured != nil && captured.Color != color {
			pawnMoves = append(pawnMoves, target)
		}
	}
	return pawnMoves
}

func getSlidingMoves(pos Position, color PieceColor, board *Board, dirs []direction) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := pos.add(dir.dRow, dir.dCol)
		for InBounds(target) {
			occupant := board.At(target)
			if occupant == nil {
				moves = append(moves, target)
			} else {
				if occupant.Color != color {
					moves = append(moves, target)
				}
				break
			}
			target = target.add(dir.dRow, dir.dCol)
		}
	}
	return moves
}

func getSteppingMoves(pos Position, color PieceColor, board *Board, dirs []direction) []Position {
	moves := []Position{}
	for _, dir := range dirs {
		target := pos.add(dir.dRow, dir.dCol)
		if !InBounds(target) {
			continue
		}
		if occupant := board.At(target); occupant == nil || occupant.Color != color {
			moves = append(moves, target)
		}
	}
	return moves
}

func getPseudoRookMoves(pos Position, color PieceColor, board *Board) []Position {
	return getSlidingMoves(pos, color, board, rookDirs)
}

func getPseudoBishopMoves(pos Position, color PieceColor, board *Board) []Position {
	return getSlidingMoves(pos, color, board, bishopDirs)
}

func getPseudoQueenMoves(pos Position, color PieceColor, board *Board) []Position {
	return append(getPseudoRookMoves(pos, color, board), getPseudoBishopMoves(pos, color, board)...)
}

func getPseudoKnightMoves(pos Position, color PieceColor, board *Board) []Position {
	return getSteppingMoves(pos, color, board, knightDirs)
}

// No castling.
func getPseudoKingMoves(pos Position, color PieceColor, board *Board) []Position {
	return getSteppingMoves(pos, color, board, kingDirs)
}
