package main

import (
	"fmt"

	"xiangqi/internal/engine"
	"xiangqi/internal/xiangqi"
)

type PlayerConfig struct {
	Name  string
	Depth int
}

type GameResult struct {
	Winner xiangqi.Side // NoSide = 和棋
	Plies  int
	Reason string
}

func playGame(e *engine.Engine, red, black PlayerConfig, maxMoves int) (GameResult, error) {
	pos := xiangqi.NewInitialPosition()

	for ply := 0; ply < maxMoves; ply++ {
		cfg := red
		if pos.SideToMove == xiangqi.Black {
			cfg = black
		}

		res := e.SearchRoot(&pos.Board, cfg.Depth, pos.SideToMove)
		if !res.Found() {
			// 无子可动，当前方输（将死或困毙）
			st := xiangqi.StatusOf(&pos.Board, pos.SideToMove)
			return GameResult{Winner: pos.SideToMove.Opponent(), Plies: ply, Reason: st.String()}, nil
		}

		next, ok := pos.ApplyMove(res.BestMove)
		if !ok {
			return GameResult{}, fmt.Errorf("invalid move %+v at ply %d", res.BestMove, ply)
		}
		pos = next
	}
	return GameResult{Winner: xiangqi.NoSide, Plies: maxMoves, Reason: "move limit"}, nil
}

func tally(results []GameResult) (red, black, draws int) {
	for _, r := range results {
		switch r.Winner {
		case xiangqi.Red:
			red++
		case xiangqi.Black:
			black++
		default:
			draws++
		}
	}
	return red, black, draws
}
