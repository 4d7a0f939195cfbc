package httpserver

import "xiangqi/internal/xiangqi"

// AiMoveRequest 请求让 AI 为当前局面想一步。
// 带 game_id 时用服务器上的局面，apply=true 会直接落子；
// 不带 game_id 时用 position/to_move，只思考不落子。
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	Position string `json:"position"`
	ToMove   int    `json:"to_move"` // 0=红, 1=黑
	MaxDepth int    `json:"max_depth"`
	Apply    bool   `json:"apply"`
}

// 前端用的招法结构
type MoveDTO struct {
	From int `json:"from"`
	To   int `json:"to"`
}

func dtoToMove(m MoveDTO) xiangqi.Move {
	return xiangqi.Move{From: m.From, To: m.To}
}

type AiMoveResponse struct {
	BestMove   MoveDTO   `json:"best_move"`
	Score      int       `json:"score"`
	Depth      int       `json:"depth"`
	Nodes      int64     `json:"nodes"`
	Position   string    `json:"position"`    // 落子后局面（未落子时为原局面）
	ToMove     int       `json:"to_move"`     // 下一手执棋方
	LegalMoves []MoveDTO `json:"legal_moves"` // 下一手所有可走棋
	Status     string    `json:"status"`      // ongoing / check / checkmate / stalemate / no_moves
	TimeMs     int64     `json:"time_ms"`
}

// NewGame 返回
type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
}

// Play 请求
type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

// State / Undo 请求
type StateRequest struct {
	GameID string `json:"game_id"`
}

// ListGames 返回
type ListGamesResponse struct {
	GameIDs []string `json:"game_ids"`
}

// DeleteGame 返回（请求复用 StateRequest）
type DeleteGameResponse struct {
	GameID  string `json:"game_id"`
	Deleted bool   `json:"deleted"`
}

// Play / State / Undo 返回
type StateResponse struct {
	GameID     string    `json:"game_id"`
	Position   string    `json:"position"`
	ToMove     int       `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	Status     string    `json:"status"`
	InCheck    bool      `json:"in_check"`
	CanUndo    bool      `json:"can_undo"`
}

func sideToInt(s xiangqi.Side) int {
	switch s {
	case xiangqi.Red:
		return 0
	case xiangqi.Black:
		return 1
	default:
		return -1
	}
}

func intToSide(v int) xiangqi.Side {
	if v == 1 {
		return xiangqi.Black
	}
	return xiangqi.Red
}

func moveToDTO(m xiangqi.Move) MoveDTO {
	return MoveDTO{From: m.From, To: m.To}
}

func movesToDTO(ms []xiangqi.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}
