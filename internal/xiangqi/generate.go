package xiangqi

// PseudoMoves 生成 side 一方的伪合法走法（不考虑自己的将是否被将军）
func PseudoMoves(b *Board, side Side) []Move {
	moves := make([]Move, 0, 64)
	for sq := 0; sq < NumSquares; sq++ {
		pc := b.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		switch pc.Type() {
		case PieceChariot:
			genChariotMoves(b, sq, &moves)
		case PieceCannon:
			genCannonMoves(b, sq, &moves)
		case PieceHorse:
			genHorseMoves(b, sq, &moves)
		case PieceElephant:
			genElephantMoves(b, sq, &moves)
		case PieceAdvisor:
			genAdvisorMoves(b, sq, &moves)
		case PieceGeneral:
			genGeneralMoves(b, sq, &moves)
		case PieceSoldier:
			genSoldierMoves(b, sq, &moves)
		}
	}
	return moves
}

// LegalMoves 生成合法走法：逐个模拟伪合法走法，走完后自己的将仍被将军（含对脸）的丢掉
func LegalMoves(b *Board, side Side) []Move {
	pseudo := PseudoMoves(b, side)
	out := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		nb := b.WithMove(mv)
		if InCheck(&nb, side) {
			continue
		}
		out = append(out, mv)
	}
	return out
}

// IsLegal 判断 mv 是不是 side 当前的合法走法之一
func IsLegal(b *Board, side Side, mv Move) bool {
	if !mv.IsValid() {
		return false
	}
	pc := b.Squares[mv.From]
	if pc == 0 || pc.Side() != side {
		return false
	}
	for _, lm := range LegalMoves(b, side) {
		if lm == mv {
			return true
		}
	}
	return false
}

// ApplyMove 走子并换边：这里默认传进来的就是合法招（由上层检查）
func (p *Position) ApplyMove(m Move) (*Position, bool) {
	if !m.IsValid() {
		return nil, false
	}
	pc := p.Board.Squares[m.From]
	if pc == 0 || pc.Side() != p.SideToMove {
		return nil, false
	}
	return &Position{
		Board:      p.Board.WithMove(m),
		SideToMove: opposite(p.SideToMove),
	}, true
}

// LegalMoves 当前走子方的合法走法
func (p *Position) LegalMoves() []Move {
	return LegalMoves(&p.Board, p.SideToMove)
}
