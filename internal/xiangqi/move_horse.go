package xiangqi

// 马 8 种“日”字：终点 + 马腿（沿长边方向紧挨着起点的那一格）
var horseLegMoves = [8]struct {
	Dr, Dc int // 终点
	Br, Bc int // 马腿
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genHorseMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, m := range horseLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if b.Squares[indexOf(row+m.Br, col+m.Bc)] != 0 {
			continue // 憋马腿
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// horseLeg 返回从 from 跳到 to 的马腿格；不是日字返回 -1
func horseLeg(from, to int) int {
	dr := rowOf(to) - rowOf(from)
	dc := colOf(to) - colOf(from)
	for _, m := range horseLegMoves {
		if m.Dr == dr && m.Dc == dc {
			return indexOf(rowOf(from)+m.Br, colOf(from)+m.Bc)
		}
	}
	return -1
}
