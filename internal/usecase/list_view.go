package usecase

import (
	"sync"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
)

const emptyListMessage = "등록된 매물이 없습니다"

// ListView строит строки списка в порядке отфильтрованного store
type ListView struct {
	mu           sync.Mutex
	lastSelected string
}

func NewListView() *ListView {
	return &ListView{}
}

// Render возвращает строки и, если выбор изменился с прошлого рендера,
// подсказку прокрутки к выбранной строке
func (v *ListView) Render(visible []*domain.Property, selectedID string) dto.ListResponse {
	resp := buildList(visible, selectedID)

	v.mu.Lock()
	changed := selectedID != v.lastSelected
	v.lastSelected = selectedID
	v.mu.Unlock()

	if changed && selectedID != "" && containsProperty(visible, selectedID) {
		resp.Scroll = &dto.ScrollHint{
			TargetID: selectedID,
			Behavior: "smooth",
			Block:    "nearest",
		}
	}
	return resp
}

func buildList(visible []*domain.Property, selectedID string) dto.ListResponse {
	rows := make([]dto.PropertyRow, 0, len(visible))
	for _, p := range visible {
		rows = append(rows, newPropertyRow(p, p.ID == selectedID))
	}

	resp := dto.ListResponse{
		Rows:  rows,
		Total: len(rows),
	}
	if len(rows) == 0 {
		resp.EmptyMessage = emptyListMessage
	}
	return resp
}

func containsProperty(properties []*domain.Property, id string) bool {
	for _, p := range properties {
		if p.ID == id {
			return true
		}
	}
	return false
}
