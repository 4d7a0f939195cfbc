package engine

import (
	"math"
	"sort"
	"time"

	"xiangqi/internal/xiangqi"
)

const (
	// 一个足够大的值，当成正负无穷
	scoreInf = 1_000_000_000

	// 将死分，不随剩余深度变化：一步杀和三步杀同分
	MateScore = 9999
)

// 搜索结果
type SearchResult struct {
	BestMove xiangqi.Move  // 最佳着法；无子可动或 depth<=0 时为 NoMove
	Score    int           // 评估分（正：红方好，负：黑方好）
	Depth    int           // 搜索深度（ply）
	Nodes    int64         // 访问的节点数
	TimeUsed time.Duration // 花费时间
}

// Found reports whether the search produced a move to play.
func (r SearchResult) Found() bool {
	return r.BestMove != xiangqi.NoMove
}

// SearchRoot 根节点：红方取极大、黑方取极小，返回最佳着法和分数。
// 没有合法着法时返回 NoMove，将死还是困毙由调用方用 InCheck 区分。
func (e *Engine) SearchRoot(b *xiangqi.Board, depth int, side xiangqi.Side) SearchResult {
	start := time.Now()
	res := SearchResult{BestMove: xiangqi.NoMove, Depth: depth, Nodes: 1}

	if depth <= 0 {
		res.Score = e.Params.Evaluate(b)
		res.TimeUsed = time.Since(start)
		return res
	}

	moves := xiangqi.LegalMoves(b, side)
	if len(moves) == 0 {
		res.Score = terminalScore(b, side)
		res.TimeUsed = time.Since(start)
		return res
	}
	orderMovesByCaptureFirst(b, moves)

	alpha, beta := -scoreInf, scoreInf
	bestScore := math.MaxInt
	if side == xiangqi.Red {
		bestScore = math.MinInt
	}
	for _, mv := range moves {
		child := b.WithMove(mv)
		score, nodes := e.alphaBeta(&child, depth-1, alpha, beta, side.Opponent())
		res.Nodes += nodes

		if side == xiangqi.Red {
			// 极大层
			if score > bestScore {
				bestScore = score
				res.BestMove = mv
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			// 极小层
			if score < bestScore {
				bestScore = score
				res.BestMove = mv
			}
			if bestScore < beta {
				beta = bestScore
			}
		}
		if alpha >= beta {
			break
		}
	}

	res.Score = bestScore
	res.TimeUsed = time.Since(start)
	return res
}

// Search 内部节点：只返回分数
func (e *Engine) Search(b *xiangqi.Board, depth, alpha, beta int, side xiangqi.Side) int {
	score, _ := e.alphaBeta(b, depth, alpha, beta, side)
	return score
}

// 标准 alpha-beta，返回分数和本子树的节点数；不共享任何可变状态
func (e *Engine) alphaBeta(b *xiangqi.Board, depth, alpha, beta int, side xiangqi.Side) (int, int64) {
	if depth <= 0 {
		return e.Params.Evaluate(b), 1
	}

	moves := xiangqi.LegalMoves(b, side)
	if len(moves) == 0 {
		return terminalScore(b, side), 1
	}
	orderMovesByCaptureFirst(b, moves)

	nodes := int64(1)
	var bestScore int
	if side == xiangqi.Red {
		bestScore = math.MinInt
		for _, mv := range moves {
			child := b.WithMove(mv)
			score, n := e.alphaBeta(&child, depth-1, alpha, beta, xiangqi.Black)
			nodes += n
			if score > bestScore {
				bestScore = score
			}
			if bestScore > alpha {
				alpha = bestScore
			}
			if alpha >= beta {
				break
			}
		}
	} else {
		bestScore = math.MaxInt
		for _, mv := range moves {
			child := b.WithMove(mv)
			score, n := e.alphaBeta(&child, depth-1, alpha, beta, xiangqi.Red)
			nodes += n
			if score < bestScore {
				bestScore = score
			}
			if bestScore < beta {
				beta = bestScore
			}
			if alpha >= beta {
				break
			}
		}
	}
	return bestScore, nodes
}

// 无子可动：被将军就是被将死，否则困毙记 0 分
func terminalScore(b *xiangqi.Board, side xiangqi.Side) int {
	if !xiangqi.InCheck(b, side) {
		return 0
	}
	if side == xiangqi.Red {
		return -MateScore
	}
	return MateScore
}

// 吃子优先；同类着法保持生成顺序
func orderMovesByCaptureFirst(b *xiangqi.Board, moves []xiangqi.Move) {
	sort.SliceStable(moves, func(i, j int) bool {
		return b.Squares[moves[i].To] != 0 && b.Squares[moves[j].To] == 0
	})
}
