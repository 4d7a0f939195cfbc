package xiangqi

// Attacks reports whether the piece on from could capture a piece standing on to,
// given the blockers currently on b. It is false for an empty from square, for
// from == to, and when to holds a piece of the attacker's own side.
func Attacks(b *Board, from, to int) bool {
	if from < 0 || from >= NumSquares || to < 0 || to >= NumSquares || from == to {
		return false
	}
	pc := b.Squares[from]
	if pc == 0 {
		return false
	}
	side := pc.Side()
	if dst := b.Squares[to]; dst != 0 && dst.Side() == side {
		return false
	}

	fr, fc := rowOf(from), colOf(from)
	tr, tc := rowOf(to), colOf(to)
	dr, dc := tr-fr, tc-fc

	switch pc.Type() {
	case PieceChariot:
		return sameLine(fr, fc, tr, tc) && piecesBetween(b, from, to) == 0
	case PieceCannon:
		return sameLine(fr, fc, tr, tc) && piecesBetween(b, from, to) == 1
	case PieceHorse:
		leg := horseLeg(from, to)
		return leg >= 0 && b.Squares[leg] == 0
	case PieceElephant:
		if abs(dr) != 2 || abs(dc) != 2 {
			return false
		}
		if !onOwnSide(side, tr) {
			return false
		}
		return b.Squares[indexOf(fr+dr/2, fc+dc/2)] == 0
	case PieceAdvisor:
		return abs(dr) == 1 && abs(dc) == 1 && inPalace(side, tr, tc)
	case PieceGeneral:
		return abs(dr)+abs(dc) == 1 && inPalace(side, tr, tc)
	case PieceSoldier:
		if dc == 0 && dr == soldierDir(side) {
			return true
		}
		return dr == 0 && abs(dc) == 1 && soldierCrossed(side, fr)
	}
	return false
}

func sameLine(fr, fc, tr, tc int) bool {
	return fr == tr || fc == tc
}

// 两格之间（不含两端）的棋子数；调用方保证同行或同列
func piecesBetween(b *Board, from, to int) int {
	fr, fc := rowOf(from), colOf(from)
	tr, tc := rowOf(to), colOf(to)
	sr, sc := sign(tr-fr), sign(tc-fc)
	n := 0
	for r, c := fr+sr, fc+sc; r != tr || c != tc; r, c = r+sr, c+sc {
		if b.Squares[indexOf(r, c)] != 0 {
			n++
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
