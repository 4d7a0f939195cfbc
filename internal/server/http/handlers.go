package httpserver

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"xiangqi/internal/engine"
	"xiangqi/internal/server/game"
	"xiangqi/internal/xiangqi"
)

const (
	DefaultDepth = 3
	MaxDepth     = 5
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games        *game.Manager
	engine       *engine.Engine
	defaultDepth int
}

func NewHandler(games *game.Manager, eng *engine.Engine, defaultDepth int) *Handler {
	if games == nil {
		games = game.NewManager(nil)
	}
	if eng == nil {
		eng = engine.NewEngine()
	}
	return &Handler{
		games:        games,
		engine:       eng,
		defaultDepth: clampDepth(defaultDepth, DefaultDepth),
	}
}

func (h *Handler) Games() *game.Manager {
	return h.games
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/ai_move":
		h.handleAiMove(w, r)
	case "/api/list_games":
		h.handleListGames(w, r)
	case "/api/delete_game":
		h.handleDeleteGame(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	g, err := h.games.NewGame()
	if err != nil {
		writeError(w, err)
		return
	}
	st := stateResponse(g)
	writeJSON(w, NewGameResponse{
		GameID:     st.GameID,
		Position:   st.Position,
		ToMove:     st.ToMove,
		LegalMoves: st.LegalMoves,
		Status:     st.Status,
	})
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Play(req.GameID, dtoToMove(req.Move))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	g, err := h.games.Undo(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, stateResponse(g))
}

func (h *Handler) handleListGames(w http.ResponseWriter, r *http.Request) {
	ids, err := h.games.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, ListGamesResponse{GameIDs: ids})
}

func (h *Handler) handleDeleteGame(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if err := h.games.Delete(req.GameID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, DeleteGameResponse{GameID: req.GameID, Deleted: true})
}

func (h *Handler) handleAiMove(w http.ResponseWriter, r *http.Request) {
	var req AiMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	// ===== 1. 取局面：服务器上的对局，或者请求里带的 FEN =====
	var pos *xiangqi.Position
	if req.GameID != "" {
		g, err := h.games.Get(req.GameID)
		if err != nil {
			writeError(w, err)
			return
		}
		pos = g.Pos
	} else {
		if req.Position == "" {
			http.Error(w, "missing position", http.StatusBadRequest)
			return
		}
		decoded, err := xiangqi.DecodePosition(req.Position)
		if err != nil {
			http.Error(w, "invalid position", http.StatusBadRequest)
			return
		}
		// 轮到谁走以请求参数为准
		decoded.SideToMove = intToSide(req.ToMove)
		pos = decoded
	}

	// ===== 2. 搜索 =====
	// 搜索不持锁，落子时用 fen 确认对局没被别的请求改过
	fen := pos.Encode()
	depth := clampDepth(req.MaxDepth, h.defaultDepth)
	res := h.engine.SearchRoot(&pos.Board, depth, pos.SideToMove)
	log.Printf("ai_move: side=%v depth=%d move=%+v score=%d nodes=%d time=%v",
		pos.SideToMove, depth, res.BestMove, res.Score, res.Nodes, res.TimeUsed)

	resp := AiMoveResponse{
		BestMove: MoveDTO{From: -1, To: -1},
		Score:    res.Score,
		Depth:    res.Depth,
		Nodes:    res.Nodes,
		TimeMs:   res.TimeUsed.Milliseconds(),
		Position: fen,
		ToMove:   sideToInt(pos.SideToMove),
	}

	// 没有走法：将死或困毙
	if !res.Found() {
		resp.Status = "no_moves"
		if st := xiangqi.StatusOf(&pos.Board, pos.SideToMove); st.Terminal() {
			resp.Status = st.String()
		}
		writeJSON(w, resp)
		return
	}
	resp.BestMove = moveToDTO(res.BestMove)

	// ===== 3. 需要的话直接落子 =====
	next := pos
	if req.Apply && req.GameID != "" {
		g, err := h.games.PlayFrom(req.GameID, fen, res.BestMove)
		if err != nil {
			writeError(w, err)
			return
		}
		next = g.Pos
	}
	resp.Position = next.Encode()
	resp.ToMove = sideToInt(next.SideToMove)
	resp.LegalMoves = movesToDTO(next.LegalMoves())
	resp.Status = xiangqi.StatusOf(&next.Board, next.SideToMove).String()
	writeJSON(w, resp)
}

func stateResponse(g *game.GameState) StateResponse {
	return StateResponse{
		GameID:     g.ID,
		Position:   g.Pos.Encode(),
		ToMove:     sideToInt(g.Pos.SideToMove),
		LegalMoves: movesToDTO(g.Pos.LegalMoves()),
		Status:     g.Status().String(),
		InCheck:    xiangqi.InCheck(&g.Pos.Board, g.Pos.SideToMove),
		CanUndo:    len(g.History) > 0,
	}
}

func clampDepth(depth, fallback int) int {
	if depth <= 0 {
		depth = fallback
	}
	if depth > MaxDepth {
		depth = MaxDepth
	}
	if depth < 1 {
		depth = 1
	}
	return depth
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, game.ErrStaleGame):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, game.ErrNothingToUndo):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Println("internal error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
