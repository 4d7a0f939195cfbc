package game

import (
	"fmt"
	"time"

	"xiangqi/internal/storage"
	"xiangqi/internal/xiangqi"
)

type GameState struct {
	ID        string
	Pos       *xiangqi.Position
	History   []*xiangqi.Position // 每走一步前的局面，悔棋用
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status 当前走子方视角的对局状态
func (g *GameState) Status() xiangqi.Status {
	return xiangqi.StatusOf(&g.Pos.Board, g.Pos.SideToMove)
}

func (g *GameState) clone() *GameState {
	cp := *g
	cp.History = append([]*xiangqi.Position(nil), g.History...)
	return &cp
}

func (g *GameState) record() *storage.GameRecord {
	rec := &storage.GameRecord{
		ID:        g.ID,
		Position:  g.Pos.Encode(),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
	for _, p := range g.History {
		rec.History = append(rec.History, p.Encode())
	}
	return rec
}

func stateFromRecord(rec *storage.GameRecord) (*GameState, error) {
	pos, err := xiangqi.DecodePosition(rec.Position)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", rec.ID, err)
	}
	g := &GameState{
		ID:        rec.ID,
		Pos:       pos,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	for i, fen := range rec.History {
		p, err := xiangqi.DecodePosition(fen)
		if err != nil {
			return nil, fmt.Errorf("game %s history %d: %w", rec.ID, i, err)
		}
		g.History = append(g.History, p)
	}
	return g, nil
}
