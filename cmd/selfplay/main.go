package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"xiangqi/internal/engine"
)

func main() {
	totalGames := flag.Int("games", 4, "number of games to play")
	parallel := flag.Int("parallel", 2, "games played at the same time")
	redDepth := flag.Int("red-depth", 2, "search depth for red")
	blackDepth := flag.Int("black-depth", 2, "search depth for black")
	maxMoves := flag.Int("maxmoves", 200, "plies before a game is scored as a draw")
	flag.Parse()

	e := engine.NewEngine()
	red := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *redDepth), Depth: *redDepth}
	black := PlayerConfig{Name: fmt.Sprintf("Alpha-Beta (Depth %d)", *blackDepth), Depth: *blackDepth}

	// 每盘棋各自持有局面，引擎无状态，可以并行跑
	results := make([]GameResult, *totalGames)
	var g errgroup.Group
	if *parallel > 0 {
		g.SetLimit(*parallel)
	}
	start := time.Now()
	for i := 0; i < *totalGames; i++ {
		i := i
		g.Go(func() error {
			// 交换先后手，避免红方先走的优势
			r, b := red, black
			if i%2 == 1 {
				r, b = black, red
			}
			res, err := playGame(e, r, b, *maxMoves)
			if err != nil {
				return fmt.Errorf("game %d: %w", i+1, err)
			}
			results[i] = res
			log.Printf("Game %d: Red [%s] vs Black [%s] -> %s after %d plies (%s)",
				i+1, r.Name, b.Name, res.Winner, res.Plies, res.Reason)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("selfplay failed: %v", err)
	}

	redWins, blackWins, draws := tally(results)
	fmt.Printf("\n=== Final Score (%v) ===\n", time.Since(start).Round(time.Millisecond))
	fmt.Printf("Red wins: %d\n", redWins)
	fmt.Printf("Black wins: %d\n", blackWins)
	fmt.Printf("Draws: %d\n", draws)
}
