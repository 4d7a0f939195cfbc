package game

import (
	"errors"
	"testing"

	"xiangqi/internal/storage"
	"xiangqi/internal/xiangqi"
)

var centralCannon = xiangqi.Move{From: xiangqi.SquareAt(7, 7), To: xiangqi.SquareAt(7, 4)}

func TestNewGameAndPlay(t *testing.T) {
	m := NewManager(nil)
	g, err := m.NewGame()
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	if g.Pos.Encode() != xiangqi.InitialFEN {
		t.Fatalf("new game should start from the initial position, got %q", g.Pos.Encode())
	}

	after, err := m.Play(g.ID, centralCannon)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if after.Pos.SideToMove != xiangqi.Black || len(after.History) != 1 {
		t.Fatalf("after play: side=%v history=%d", after.Pos.SideToMove, len(after.History))
	}

	// 红方已经走过，再走红子属于非法
	if _, err := m.Play(g.ID, xiangqi.Move{From: xiangqi.SquareAt(9, 0), To: xiangqi.SquareAt(8, 0)}); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("got err=%v want ErrIllegalMove", err)
	}
}

func TestUndo(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame()
	if _, err := m.Undo(g.ID); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("got err=%v want ErrNothingToUndo", err)
	}
	if _, err := m.Play(g.ID, centralCannon); err != nil {
		t.Fatalf("play: %v", err)
	}
	back, err := m.Undo(g.ID)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if back.Pos.Encode() != xiangqi.InitialFEN || len(back.History) != 0 {
		t.Fatalf("undo should restore the opening, got %q", back.Pos.Encode())
	}
}

func TestPlayFromRejectsStalePosition(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame()
	seen := g.Pos.Encode()

	if _, err := m.Play(g.ID, centralCannon); err != nil {
		t.Fatalf("play: %v", err)
	}
	// 黑方第一步也合法，但局面已经不是 seen 了
	reply := xiangqi.Move{From: xiangqi.SquareAt(0, 0), To: xiangqi.SquareAt(1, 0)}
	if _, err := m.PlayFrom(g.ID, seen, reply); !errors.Is(err, ErrStaleGame) {
		t.Fatalf("got err=%v want ErrStaleGame", err)
	}

	cur, _ := m.Get(g.ID)
	after, err := m.PlayFrom(g.ID, cur.Pos.Encode(), reply)
	if err != nil {
		t.Fatalf("play from current position: %v", err)
	}
	if len(after.History) != 2 || after.Pos.SideToMove != xiangqi.Red {
		t.Fatalf("after PlayFrom: side=%v history=%d", after.Pos.SideToMove, len(after.History))
	}
}

func TestListAndDelete(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m := NewManager(store)
	a, _ := m.NewGame()
	b, _ := m.NewGame()

	ids, err := m.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("list: got %v", ids)
	}

	if err := m.Delete(a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := m.Delete(a.ID); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("delete twice: got err=%v want ErrGameNotFound", err)
	}
	if _, err := store.LoadGame(a.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("store still holds deleted game: err=%v", err)
	}

	// 新 manager 只能从 store 里看到剩下的一盘
	ids, err = NewManager(store).List()
	if err != nil {
		t.Fatalf("list after restart: %v", err)
	}
	if len(ids) != 1 || ids[0] != b.ID {
		t.Fatalf("list after restart: got %v want [%s]", ids, b.ID)
	}
}

func TestGetUnknownGame(t *testing.T) {
	m := NewManager(nil)
	if _, err := m.Get("missing"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("got err=%v want ErrGameNotFound", err)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame()
	g.History = append(g.History, xiangqi.NewInitialPosition())

	again, _ := m.Get(g.ID)
	if len(again.History) != 0 {
		t.Fatalf("mutating a snapshot leaked into the manager")
	}
}

func TestPlayRejectedAfterMate(t *testing.T) {
	m := NewManager(nil)
	g, _ := m.NewGame()
	mated, err := xiangqi.DecodePosition("3k5/9/9/9/9/9/9/9/r8/4K3r w")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := m.Update(g.ID, mated); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ := m.Get(g.ID)
	if got.Status() != xiangqi.StatusCheckmate {
		t.Fatalf("status: got=%v want checkmate", got.Status())
	}
	if _, err := m.Play(g.ID, xiangqi.Move{From: xiangqi.SquareAt(9, 4), To: xiangqi.SquareAt(8, 4)}); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got err=%v want ErrGameOver", err)
	}
}

func TestGamesSurviveManagerRestart(t *testing.T) {
	store, err := storage.OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	first := NewManager(store)
	g, err := first.NewGame()
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	played, err := first.Play(g.ID, centralCannon)
	if err != nil {
		t.Fatalf("play: %v", err)
	}

	second := NewManager(store)
	loaded, err := second.Get(g.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Pos.Encode() != played.Pos.Encode() || len(loaded.History) != 1 {
		t.Fatalf("reloaded game differs: %q history=%d", loaded.Pos.Encode(), len(loaded.History))
	}
	back, err := second.Undo(g.ID)
	if err != nil {
		t.Fatalf("undo after reload: %v", err)
	}
	if back.Pos.Encode() != xiangqi.InitialFEN {
		t.Fatalf("undo after reload: got %q", back.Pos.Encode())
	}
}
