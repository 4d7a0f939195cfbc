package engine

import "xiangqi/internal/xiangqi"

// Engine 只保存评估参数，本身不缓存任何局面，多个 goroutine 可以共用
type Engine struct {
	Params EvalParams
}

func NewEngine() *Engine {
	return &Engine{Params: DefaultEvalParams()}
}

func NewEngineWithParams(p EvalParams) *Engine {
	return &Engine{Params: p}
}

var defaultEngine = NewEngine()

// SearchRoot 用默认参数在根节点搜索 depth 层
func SearchRoot(b *xiangqi.Board, depth int, side xiangqi.Side) SearchResult {
	return defaultEngine.SearchRoot(b, depth, side)
}

// Search 用默认参数做一次内部节点搜索
func Search(b *xiangqi.Board, depth, alpha, beta int, side xiangqi.Side) int {
	return defaultEngine.Search(b, depth, alpha, beta, side)
}
