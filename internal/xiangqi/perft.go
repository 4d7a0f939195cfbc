package xiangqi

// Perft 统计 depth 层合法走法树的叶子数，用来回归走法生成
func Perft(b *Board, side Side, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(b, side)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, mv := range moves {
		nb := b.WithMove(mv)
		nodes += Perft(&nb, opposite(side), depth-1)
	}
	return nodes
}

// Divide 按根节点着法拆分 Perft 结果
func Divide(b *Board, side Side, depth int) map[Move]int64 {
	out := make(map[Move]int64)
	if depth <= 0 {
		return out
	}
	for _, mv := range LegalMoves(b, side) {
		nb := b.WithMove(mv)
		out[mv] = Perft(&nb, opposite(side), depth-1)
	}
	return out
}
