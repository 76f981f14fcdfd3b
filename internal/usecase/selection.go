package usecase

import (
	"sync"

	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/observer"
	"go.uber.org/zap"
)

// SelectionState - выбранное объявление (общее для карты и списка)
// и объявление, открытое в панели деталей
type SelectionState struct {
	SelectedID string
	DetailID   string
}

func (s SelectionState) DetailOpen() bool {
	return s.DetailID != ""
}

// SelectionCoordinator - единственный источник "что выделено" для карты и списка
type SelectionCoordinator struct {
	mu      sync.Mutex
	state   SelectionState
	changes *observer.Subject[SelectionState]
	logger  *zap.Logger
}

func NewSelectionCoordinator(logger *zap.Logger) *SelectionCoordinator {
	return &SelectionCoordinator{
		changes: observer.NewSubject[SelectionState](),
		logger:  logger,
	}
}

// SelectFromMap - клик по маркеру: только выделение
func (c *SelectionCoordinator) SelectFromMap(id string) {
	c.apply(func(s *SelectionState) {
		s.SelectedID = id
	})
}

// SelectFromList - клик по строке списка: выделение и открытие деталей
func (c *SelectionCoordinator) SelectFromList(id string) {
	c.apply(func(s *SelectionState) {
		s.SelectedID = id
		s.DetailID = id
	})
}

// CloseDetail закрывает панель деталей и снимает выделение
func (c *SelectionCoordinator) CloseDetail() {
	c.apply(func(s *SelectionState) {
		s.SelectedID = ""
		s.DetailID = ""
	})
}

// Forget вызывается после удаления объявления: если оно выделено или открыто
// в деталях, сбрасываются и выделение, и панель деталей
func (c *SelectionCoordinator) Forget(id string) {
	c.apply(func(s *SelectionState) {
		if id != "" && (s.SelectedID == id || s.DetailID == id) {
			*s = SelectionState{}
		}
	})
}

func (c *SelectionCoordinator) State() SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe - уведомления о смене состояния (только при реальном изменении)
func (c *SelectionCoordinator) Subscribe(fn func(SelectionState)) func() {
	return c.changes.Subscribe(fn)
}

func (c *SelectionCoordinator) apply(mutate func(s *SelectionState)) {
	c.mu.Lock()
	prev := c.state
	mutate(&c.state)
	next := c.state
	c.mu.Unlock()

	if prev == next {
		return
	}

	c.logger.Debug("Selection changed",
		zap.String("selected_id", next.SelectedID),
		zap.String("detail_id", next.DetailID))
	c.changes.Notify(next)
}
