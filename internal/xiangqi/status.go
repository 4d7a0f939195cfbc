package xiangqi

type Status int

const (
	StatusOngoing Status = iota
	StatusCheck
	StatusCheckmate
	StatusStalemate
	// 有一方的将不在盘上：正常走子不会出现
	StatusNoGeneral
)

func (s Status) String() string {
	switch s {
	case StatusOngoing:
		return "ongoing"
	case StatusCheck:
		return "check"
	case StatusCheckmate:
		return "checkmate"
	case StatusStalemate:
		return "stalemate"
	case StatusNoGeneral:
		return "no_general"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further move can be played.
func (s Status) Terminal() bool {
	return s == StatusCheckmate || s == StatusStalemate || s == StatusNoGeneral
}

// StatusOf classifies the position for side to move: no legal moves plus check is
// checkmate, no legal moves without check is stalemate. Both lose for side.
func StatusOf(b *Board, side Side) Status {
	if _, ok := GeneralSquare(b, side); !ok {
		return StatusNoGeneral
	}
	if _, ok := GeneralSquare(b, opposite(side)); !ok {
		return StatusNoGeneral
	}
	inCheck := InCheck(b, side)
	if len(LegalMoves(b, side)) == 0 {
		if inCheck {
			return StatusCheckmate
		}
		return StatusStalemate
	}
	if inCheck {
		return StatusCheck
	}
	return StatusOngoing
}

// Winner 返回终局的胜方；对局未结束返回 NoSide
func Winner(b *Board, side Side) Side {
	switch StatusOf(b, side) {
	case StatusCheckmate, StatusStalemate:
		return opposite(side)
	case StatusNoGeneral:
		if _, ok := GeneralSquare(b, side); !ok {
			return opposite(side)
		}
		return side
	}
	return NoSide
}
