package xiangqi

func genSoldierMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := b.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()

	// 前一格（可以吃子）；走到底线后就没有前进步了
	if r := row + soldierDir(side); onBoard(r, col) {
		if to := indexOf(r, col); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	// 过河以后才能左右走
	if !soldierCrossed(side, row) {
		return
	}
	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !onBoard(row, c) {
			continue
		}
		if to := indexOf(row, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
