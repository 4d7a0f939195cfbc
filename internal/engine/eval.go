package engine

import (
	"xiangqi/internal/xiangqi"
)

// EvalParams 静态评估的可调参数
type EvalParams struct {
	PieceValue [8]int // 按 PieceType 下标

	// 兵的推进分：红兵在 r 行得 (RedSoldierPivot-r)*SoldierAdvance，
	// 黑兵在 r 行得 -(r-BlackSoldierPivot)*SoldierAdvance
	SoldierAdvance    int
	RedSoldierPivot   int
	BlackSoldierPivot int
}

func DefaultEvalParams() EvalParams {
	var p EvalParams
	p.PieceValue[xiangqi.PieceGeneral] = 10000
	p.PieceValue[xiangqi.PieceChariot] = 500
	p.PieceValue[xiangqi.PieceCannon] = 290
	p.PieceValue[xiangqi.PieceHorse] = 270
	p.PieceValue[xiangqi.PieceAdvisor] = 110
	p.PieceValue[xiangqi.PieceElephant] = 110
	p.PieceValue[xiangqi.PieceSoldier] = 60
	p.SoldierAdvance = 2
	p.RedSoldierPivot = 6
	p.BlackSoldierPivot = 3
	return p
}

// Evaluate 从红方视角评估：正数红方好，负数黑方好
func (p EvalParams) Evaluate(b *xiangqi.Board) int {
	score := 0
	for sq, pc := range b.Squares {
		if pc == 0 {
			continue
		}
		pt := pc.Type()
		val := 0
		if int(pt) < len(p.PieceValue) {
			val = p.PieceValue[pt]
		}
		row := xiangqi.RowOf(sq)
		switch pc.Side() {
		case xiangqi.Red:
			score += val
			if pt == xiangqi.PieceSoldier {
				score += (p.RedSoldierPivot - row) * p.SoldierAdvance
			}
		case xiangqi.Black:
			score -= val
			if pt == xiangqi.PieceSoldier {
				score -= (row - p.BlackSoldierPivot) * p.SoldierAdvance
			}
		}
	}
	return score
}

var defaultParams = DefaultEvalParams()

// Evaluate 用默认参数评估
func Evaluate(b *xiangqi.Board) int {
	return defaultParams.Evaluate(b)
}
