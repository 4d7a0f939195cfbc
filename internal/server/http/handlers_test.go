package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"xiangqi/internal/xiangqi"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(NewHandler(nil, nil, 2), ""))
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, srv *httptest.Server, path string, body any, out any) int {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusOK && out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode %s response: %v", path, err)
		}
	}
	return resp.StatusCode
}

func TestGameFlow(t *testing.T) {
	srv := newTestServer(t)

	var ng NewGameResponse
	if code := post(t, srv, "/api/new_game", struct{}{}, &ng); code != http.StatusOK {
		t.Fatalf("new_game status %d", code)
	}
	if ng.Position != xiangqi.InitialFEN || len(ng.LegalMoves) != 44 || ng.Status != "ongoing" {
		t.Fatalf("new_game: %+v", ng)
	}

	mv := MoveDTO{From: xiangqi.SquareAt(7, 7), To: xiangqi.SquareAt(7, 4)}
	var played StateResponse
	if code := post(t, srv, "/api/play", PlayRequest{GameID: ng.GameID, Move: mv}, &played); code != http.StatusOK {
		t.Fatalf("play status %d", code)
	}
	if played.ToMove != 1 || !played.CanUndo {
		t.Fatalf("after play: %+v", played)
	}

	var st StateResponse
	if code := post(t, srv, "/api/state", StateRequest{GameID: ng.GameID}, &st); code != http.StatusOK {
		t.Fatalf("state status %d", code)
	}
	if st.Position != played.Position {
		t.Fatalf("state position %q != played %q", st.Position, played.Position)
	}

	var undone StateResponse
	if code := post(t, srv, "/api/undo", StateRequest{GameID: ng.GameID}, &undone); code != http.StatusOK {
		t.Fatalf("undo status %d", code)
	}
	if undone.Position != xiangqi.InitialFEN || undone.CanUndo {
		t.Fatalf("after undo: %+v", undone)
	}
}

func TestPlayErrors(t *testing.T) {
	srv := newTestServer(t)
	var ng NewGameResponse
	post(t, srv, "/api/new_game", struct{}{}, &ng)

	bad := PlayRequest{GameID: ng.GameID, Move: MoveDTO{From: xiangqi.SquareAt(9, 4), To: xiangqi.SquareAt(7, 4)}}
	if code := post(t, srv, "/api/play", bad, nil); code != http.StatusBadRequest {
		t.Fatalf("illegal move: status %d want 400", code)
	}
	if code := post(t, srv, "/api/state", StateRequest{GameID: "nope"}, nil); code != http.StatusNotFound {
		t.Fatalf("unknown game: status %d want 404", code)
	}
	if code := post(t, srv, "/api/undo", StateRequest{GameID: ng.GameID}, nil); code != http.StatusBadRequest {
		t.Fatalf("undo at start: status %d want 400", code)
	}

	resp, err := http.Get(srv.URL + "/api/state")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Fatalf("GET: status %d want 405", resp.StatusCode)
	}
}

func TestAiMoveThinkOnly(t *testing.T) {
	srv := newTestServer(t)
	fen := "4k4/R8/9/9/9/8R/9/9/9/3K5 w"
	var resp AiMoveResponse
	req := AiMoveRequest{Position: fen, ToMove: 0, MaxDepth: 2}
	if code := post(t, srv, "/api/ai_move", req, &resp); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if resp.BestMove.From < 0 || resp.Score != 9999 {
		t.Fatalf("expected a mating move, got %+v", resp)
	}
	if resp.Status != "ongoing" || resp.ToMove != 0 || resp.Position != fen {
		t.Fatalf("think-only must leave the position untouched: %+v", resp)
	}
}

func TestAiMoveApply(t *testing.T) {
	srv := newTestServer(t)
	var ng NewGameResponse
	post(t, srv, "/api/new_game", struct{}{}, &ng)

	var resp AiMoveResponse
	req := AiMoveRequest{GameID: ng.GameID, MaxDepth: 1, Apply: true}
	if code := post(t, srv, "/api/ai_move", req, &resp); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if resp.ToMove != 1 || resp.Position == xiangqi.InitialFEN {
		t.Fatalf("applied ai move should hand the turn to black: %+v", resp)
	}

	var st StateResponse
	post(t, srv, "/api/state", StateRequest{GameID: ng.GameID}, &st)
	if st.Position != resp.Position {
		t.Fatalf("game state %q does not reflect the ai move %q", st.Position, resp.Position)
	}
}

func TestAiMoveApplyConcurrent(t *testing.T) {
	srv := newTestServer(t)
	var ng NewGameResponse
	post(t, srv, "/api/new_game", struct{}{}, &ng)

	const n = 8
	codes := make([]int, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, _ := json.Marshal(AiMoveRequest{GameID: ng.GameID, MaxDepth: 1, Apply: true})
			resp, err := http.Post(srv.URL+"/api/ai_move", "application/json", bytes.NewReader(data))
			if err != nil {
				return
			}
			resp.Body.Close()
			codes[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	applied := 0
	for i, code := range codes {
		switch code {
		case http.StatusOK:
			applied++
		case http.StatusConflict:
		default:
			t.Fatalf("request %d: status %d want 200 or 409 (codes=%v)", i, code, codes)
		}
	}
	if applied == 0 {
		t.Fatalf("no request applied its move: codes=%v", codes)
	}

	// 每个 200 恰好对应一步，每步都是在它搜索的那个局面上走的
	g, err := srv.Config.Handler.(*Server).API().Games().Get(ng.GameID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(g.History) != applied {
		t.Fatalf("history: got=%d want=%d (codes=%v)", len(g.History), applied, codes)
	}
}

func TestListAndDeleteGames(t *testing.T) {
	srv := newTestServer(t)
	var a, b NewGameResponse
	post(t, srv, "/api/new_game", struct{}{}, &a)
	post(t, srv, "/api/new_game", struct{}{}, &b)

	var list ListGamesResponse
	if code := post(t, srv, "/api/list_games", struct{}{}, &list); code != http.StatusOK {
		t.Fatalf("list_games status %d", code)
	}
	if len(list.GameIDs) != 2 {
		t.Fatalf("list_games: %+v", list)
	}

	var del DeleteGameResponse
	if code := post(t, srv, "/api/delete_game", StateRequest{GameID: a.GameID}, &del); code != http.StatusOK {
		t.Fatalf("delete_game status %d", code)
	}
	if !del.Deleted || del.GameID != a.GameID {
		t.Fatalf("delete_game: %+v", del)
	}
	if code := post(t, srv, "/api/state", StateRequest{GameID: a.GameID}, nil); code != http.StatusNotFound {
		t.Fatalf("deleted game: status %d want 404", code)
	}
	if code := post(t, srv, "/api/delete_game", StateRequest{GameID: a.GameID}, nil); code != http.StatusNotFound {
		t.Fatalf("delete twice: status %d want 404", code)
	}

	list = ListGamesResponse{}
	post(t, srv, "/api/list_games", struct{}{}, &list)
	if len(list.GameIDs) != 1 || list.GameIDs[0] != b.GameID {
		t.Fatalf("after delete: %+v", list)
	}
}

func TestAiMoveNoMoves(t *testing.T) {
	srv := newTestServer(t)
	var resp AiMoveResponse
	req := AiMoveRequest{Position: "3k5/9/9/9/9/3r1r3/9/9/r8/4K4 w", MaxDepth: 2}
	if code := post(t, srv, "/api/ai_move", req, &resp); code != http.StatusOK {
		t.Fatalf("ai_move status %d", code)
	}
	if resp.BestMove.From != -1 || resp.Status != "stalemate" {
		t.Fatalf("stalemate: %+v", resp)
	}
}

func TestClampDepth(t *testing.T) {
	cases := []struct{ in, fallback, want int }{
		{0, 3, 3},
		{-2, 3, 3},
		{2, 3, 2},
		{9, 3, MaxDepth},
		{0, 0, 1},
	}
	for _, tc := range cases {
		if got := clampDepth(tc.in, tc.fallback); got != tc.want {
			t.Errorf("clampDepth(%d, %d) = %d want %d", tc.in, tc.fallback, got, tc.want)
		}
	}
}
