package xiangqi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Black  Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "none"
	}
}

// Opponent returns the other side; NoSide stays NoSide.
func (s Side) Opponent() Side {
	return opposite(s)
}

type PieceType int8

const (
	PieceNone     PieceType = iota
	PieceGeneral            // 帥 / 將
	PieceAdvisor            // 仕 / 士
	PieceElephant           // 相 / 象
	PieceChariot            // 車
	PieceHorse              // 馬
	PieceCannon             // 炮 / 砲
	PieceSoldier            // 兵 / 卒
)

func (pt PieceType) String() string {
	switch pt {
	case PieceGeneral:
		return "general"
	case PieceAdvisor:
		return "advisor"
	case PieceElephant:
		return "elephant"
	case PieceChariot:
		return "chariot"
	case PieceHorse:
		return "horse"
	case PieceCannon:
		return "cannon"
	case PieceSoldier:
		return "soldier"
	default:
		return "none"
	}
}

type Piece int8 // 0=空；>0 红；<0 黑；abs=PieceType

// MakePiece builds a piece value. It returns 0 (empty) for PieceNone or NoSide.
func MakePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Black
}

// Board 一共 90 格，下标 = row*Cols + col
type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// NoMove 表示“没有着法”，0 号格是合法格子，所以不能用零值
var NoMove = Move{From: -1, To: -1}

// IsValid reports whether both squares of m lie on the board.
func (m Move) IsValid() bool {
	return m.From >= 0 && m.From < NumSquares && m.To >= 0 && m.To < NumSquares
}

// Position = 棋盘 + 轮到谁走，由调用方持有
type Position struct {
	Board      Board
	SideToMove Side
}
