package xiangqi

import (
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols

	// 楚河汉界在第 4、5 行之间：红方半场 5..9，黑方半场 0..4
	RiverRow = 5

	palaceMinCol = 3
	palaceMaxCol = 5
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

// SquareAt converts (row, col) to a square index. Row 0 is Black's back rank.
func SquareAt(row, col int) int { return indexOf(row, col) }

func RowOf(sq int) int { return rowOf(sq) }
func ColOf(sq int) int { return colOf(sq) }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Black
	}
	if side == Black {
		return Red
	}
	return NoSide
}

// 兵的前进方向：红向上(-1)，黑向下(+1)
func soldierDir(side Side) int {
	if side == Red {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// 是否已经过河
func soldierCrossed(side Side, row int) bool {
	if side == Red {
		return row < RiverRow
	}
	if side == Black {
		return row >= RiverRow
	}
	return false
}

// 相不能过河：目标行必须在本方半场
func onOwnSide(side Side, row int) bool {
	if side == Red {
		return row >= RiverRow
	}
	if side == Black {
		return row < RiverRow
	}
	return false
}

// 是否在九宫
func inPalace(side Side, row, col int) bool {
	if col < palaceMinCol || col > palaceMaxCol {
		return false
	}
	if side == Black {
		return row >= 0 && row <= 2
	}
	if side == Red {
		return row >= Rows-3 && row <= Rows-1 // 7..9
	}
	return false
}

// At returns the piece on sq, or false when the square is empty or off the board.
func (b Board) At(sq int) (Piece, bool) {
	if sq < 0 || sq >= NumSquares {
		return 0, false
	}
	pc := b.Squares[sq]
	return pc, pc != 0
}

// WithMove returns a copy of b with the piece on m.From relocated to m.To.
// Whatever stood on m.To is discarded. Legality is not checked.
func (b Board) WithMove(m Move) Board {
	nb := b
	if !m.IsValid() {
		return nb
	}
	nb.Squares[m.To] = nb.Squares[m.From]
	nb.Squares[m.From] = 0
	return nb
}

var letterToPieceType = map[rune]PieceType{
	'k': PieceGeneral,
	'a': PieceAdvisor,
	'b': PieceElephant,
	'r': PieceChariot,
	'n': PieceHorse,
	'c': PieceCannon,
	'p': PieceSoldier,
}

var pieceTypeToLetter = [...]rune{
	PieceNone:     '.',
	PieceGeneral:  'k',
	PieceAdvisor:  'a',
	PieceElephant: 'b',
	PieceChariot:  'r',
	PieceHorse:    'n',
	PieceCannon:   'c',
	PieceSoldier:  'p',
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	if pt <= PieceNone || int(pt) >= len(pieceTypeToLetter) {
		return '.'
	}
	base := pieceTypeToLetter[pt]
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// 大写红方，小写黑方
const initialBoardString = `rnbakabnr
.........
.c.....c.
p.p.p.p.p
.........
.........
P.P.P.P.P
.C.....C.
.........
RNBAKABNR`

func parseBoard(s string) Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("board string must have 10 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("board string rows must have 9 columns")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			pt, ok := letterToPieceType[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = Red
			}
			b.Squares[indexOf(r, c)] = MakePiece(side, pt)
		}
	}
	return b
}

// NewInitialBoard returns the standard Xiangqi starting position.
func NewInitialBoard() Board {
	return parseBoard(initialBoardString)
}

func NewInitialPosition() *Position {
	return &Position{
		Board:      NewInitialBoard(),
		SideToMove: Red, // 红先
	}
}

// String renders the board one rank per line, same letters as the FEN codec.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Cols; c++ {
			sb.WriteRune(pieceToChar(b.Squares[indexOf(r, c)]))
		}
	}
	return sb.String()
}
