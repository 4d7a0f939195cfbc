package game

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"xiangqi/internal/storage"
	"xiangqi/internal/xiangqi"
)

var (
	ErrGameNotFound  = errors.New("game not found")
	ErrIllegalMove   = errors.New("illegal move")
	ErrGameOver      = errors.New("game is over")
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrStaleGame     = errors.New("game changed since the position was read")
)

// Manager 内存里的对局表；store 不为 nil 时每次修改都写穿到 badger
type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
	store *storage.Store
}

func NewManager(store *storage.Store) *Manager {
	return &Manager{
		games: make(map[string]*GameState),
		store: store,
	}
}

func (m *Manager) NewGame() (*GameState, error) {
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       xiangqi.NewInitialPosition(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.persist(g); err != nil {
		return nil, err
	}
	m.games[g.ID] = g
	return g.clone(), nil
}

// Get 返回对局快照；内存里没有时尝试从 store 读回
func (m *Manager) Get(gameID string) (*GameState, error) {
	m.mu.RLock()
	g, ok := m.games[gameID]
	m.mu.RUnlock()
	if ok {
		return g.clone(), nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	g, err := m.loadLocked(gameID)
	if err != nil {
		return nil, err
	}
	return g.clone(), nil
}

// Play 校验 mv 是当前走子方的合法走法，然后落子
func (m *Manager) Play(gameID string, mv xiangqi.Move) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.loadLocked(gameID)
	if err != nil {
		return nil, err
	}
	return m.playLocked(g, mv)
}

// PlayFrom 只有当对局仍停在 fen 这个局面时才落子，否则返回 ErrStaleGame。
// 给先读局面、解锁搜索、再落子的调用方用。
func (m *Manager) PlayFrom(gameID, fen string, mv xiangqi.Move) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.loadLocked(gameID)
	if err != nil {
		return nil, err
	}
	if g.Pos.Encode() != fen {
		return nil, ErrStaleGame
	}
	return m.playLocked(g, mv)
}

func (m *Manager) playLocked(g *GameState, mv xiangqi.Move) (*GameState, error) {
	if g.Status().Terminal() {
		return nil, ErrGameOver
	}
	if !xiangqi.IsLegal(&g.Pos.Board, g.Pos.SideToMove, mv) {
		return nil, ErrIllegalMove
	}
	next, ok := g.Pos.ApplyMove(mv)
	if !ok {
		return nil, ErrIllegalMove
	}

	updated := g.clone()
	updated.History = append(updated.History, g.Pos)
	updated.Pos = next
	updated.UpdatedAt = time.Now()
	if err := m.persist(updated); err != nil {
		return nil, err
	}
	m.games[g.ID] = updated
	return updated.clone(), nil
}

// Undo 退回上一步之前的局面
func (m *Manager) Undo(gameID string) (*GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.loadLocked(gameID)
	if err != nil {
		return nil, err
	}
	if len(g.History) == 0 {
		return nil, ErrNothingToUndo
	}

	updated := g.clone()
	last := len(updated.History) - 1
	updated.Pos = updated.History[last]
	updated.History = updated.History[:last]
	updated.UpdatedAt = time.Now()
	if err := m.persist(updated); err != nil {
		return nil, err
	}
	m.games[gameID] = updated
	return updated.clone(), nil
}

// Update 直接替换局面（不做合法性校验），并记入历史
func (m *Manager) Update(gameID string, pos *xiangqi.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	g, err := m.loadLocked(gameID)
	if err != nil {
		return err
	}
	updated := g.clone()
	updated.History = append(updated.History, g.Pos)
	updated.Pos = pos
	updated.UpdatedAt = time.Now()
	if err := m.persist(updated); err != nil {
		return err
	}
	m.games[gameID] = updated
	return nil
}

// List 返回所有对局 ID（内存和 store 合并），按字典序
func (m *Manager) List() ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[string]bool, len(m.games))
	for id := range m.games {
		seen[id] = true
	}
	if m.store != nil {
		ids, err := m.store.ListGames()
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			seen[id] = true
		}
	}
	out := make([]string, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Strings(out)
	return out, nil
}

// Delete 删除对局，store 里的记录一起删
func (m *Manager) Delete(gameID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := m.loadLocked(gameID); err != nil {
		return err
	}
	if m.store != nil {
		if err := m.store.DeleteGame(gameID); err != nil {
			return err
		}
	}
	delete(m.games, gameID)
	return nil
}

func (m *Manager) loadLocked(gameID string) (*GameState, error) {
	if g, ok := m.games[gameID]; ok {
		return g, nil
	}
	if m.store == nil {
		return nil, ErrGameNotFound
	}
	rec, err := m.store.LoadGame(gameID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	g, err := stateFromRecord(rec)
	if err != nil {
		return nil, err
	}
	m.games[gameID] = g
	return g, nil
}

func (m *Manager) persist(g *GameState) error {
	if m.store == nil {
		return nil
	}
	return m.store.SaveGame(g.record())
}
