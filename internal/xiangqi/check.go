package xiangqi

// GeneralSquare 返回 side 的将/帅所在格
func GeneralSquare(b *Board, side Side) (int, bool) {
	for sq, pc := range b.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() == PieceGeneral {
			return sq, true
		}
	}
	return -1, false
}

// GeneralsFace 判断 side 的将沿本列向两边看，第一个遇到的子是不是对方的将。
// 中间有任何子挡着都不算。
func GeneralsFace(b *Board, side Side) bool {
	sq, ok := GeneralSquare(b, side)
	if !ok {
		return false
	}
	return facesOpposingGeneral(b, sq, side)
}

func facesOpposingGeneral(b *Board, sq int, side Side) bool {
	row, col := rowOf(sq), colOf(sq)
	for _, dir := range [2]int{-1, +1} {
		for r := row + dir; r >= 0 && r < Rows; r += dir {
			pc := b.Squares[indexOf(r, col)]
			if pc == 0 {
				continue
			}
			if pc.Type() == PieceGeneral && pc.Side() == opposite(side) {
				return true
			}
			break
		}
	}
	return false
}

// IsAttacked 判断 sq 这个格子是否被 bySide 这一方的任意一个子攻击
func IsAttacked(b *Board, sq int, bySide Side) bool {
	for s, pc := range b.Squares {
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		if Attacks(b, s, sq) {
			return true
		}
	}
	return false
}

// InCheck 判断 side 这一方的将是否被将军（含将帅对脸）。
// 找不到将时返回 false，由调用方把它当作异常终局处理。
func InCheck(b *Board, side Side) bool {
	sq, ok := GeneralSquare(b, side)
	if !ok {
		return false
	}
	if facesOpposingGeneral(b, sq, side) {
		return true
	}
	return IsAttacked(b, sq, opposite(side))
}
