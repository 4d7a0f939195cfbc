package xiangqi

var rookDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}

var bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

// 目标格为空或对方子时才能落子
func canLand(b *Board, to int, side Side) bool {
	dst := b.Squares[to]
	return dst == 0 || dst.Side() != side
}

// 车：横竖随便走
func genChariotMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 炮：车走法 + 隔一子吃
func genCannonMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r, c := row+d[0], col+d[1]

		// 走子阶段：直到第一个棋子（炮架）
		for onBoard(r, c) {
			to := indexOf(r, c)
			if b.Squares[to] == 0 {
				*moves = append(*moves, Move{From: from, To: to})
				r += d[0]
				c += d[1]
				continue
			}
			r += d[0]
			c += d[1]
			break
		}

		// 吃子阶段：越过炮架，遇到第一子可吃
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := b.Squares[to]
			if pc != 0 {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}

// 相：田字，塞象眼不能走，不能过河
func genElephantMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + 2*d[0]
		c := col + 2*d[1]
		if !onBoard(r, c) || !onOwnSide(side, r) {
			continue
		}
		if b.Squares[indexOf(row+d[0], col+d[1])] != 0 {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 士：九宫内斜走一格
func genAdvisorMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range bishopDirs {
		r := row + d[0]
		c := col + d[1]
		if !onBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// 将：九宫内上下左右一格。对脸由 InCheck 处理
func genGeneralMoves(b *Board, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := b.Squares[from].Side()
	for _, d := range rookDirs {
		r := row + d[0]
		c := col + d[1]
		if !onBoard(r, c) || !inPalace(side, r, c) {
			continue
		}
		if to := indexOf(r, c); canLand(b, to, side) {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
