package main

import (
	"flag"
	"fmt"
	"log"
	"sort"
	"time"

	"xiangqi/internal/xiangqi"
)

func main() {
	fen := flag.String("fen", xiangqi.InitialFEN, "position to count")
	depth := flag.Int("depth", 3, "perft depth")
	divide := flag.Bool("divide", false, "print counts per root move")
	flag.Parse()

	pos, err := xiangqi.DecodePosition(*fen)
	if err != nil {
		log.Fatalf("bad -fen: %v", err)
	}
	fmt.Println(pos.Board.String())
	fmt.Println("FEN:", pos.Encode())
	fmt.Println("Status:", xiangqi.StatusOf(&pos.Board, pos.SideToMove))
	fmt.Println("Legal moves:", len(pos.LegalMoves()))

	if *divide {
		counts := xiangqi.Divide(&pos.Board, pos.SideToMove, *depth)
		moves := make([]xiangqi.Move, 0, len(counts))
		for mv := range counts {
			moves = append(moves, mv)
		}
		sort.Slice(moves, func(i, j int) bool {
			if moves[i].From != moves[j].From {
				return moves[i].From < moves[j].From
			}
			return moves[i].To < moves[j].To
		})
		for _, mv := range moves {
			fmt.Printf("  (%d,%d)->(%d,%d): %d\n",
				xiangqi.RowOf(mv.From), xiangqi.ColOf(mv.From),
				xiangqi.RowOf(mv.To), xiangqi.ColOf(mv.To), counts[mv])
		}
	}

	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := xiangqi.Perft(&pos.Board, pos.SideToMove, d)
		fmt.Printf("perft(%d) = %d  (%v)\n", d, n, time.Since(start).Round(time.Millisecond))
	}
}
