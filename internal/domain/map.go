package domain

import (
	"errors"
	"time"
)

var (
	ErrMapNotCreated  = errors.New("map is not created")
	ErrMarkerNotFound = errors.New("marker not found")
)

// MapStatus - состояние загрузки картографического провайдера
type MapStatus string

const (
	MapStatusLoading MapStatus = "loading"
	MapStatusReady   MapStatus = "ready"
	MapStatusFailed  MapStatus = "failed"
)

// LoaderStatus - результат однократной загрузки скрипта провайдера
type LoaderStatus struct {
	State     MapStatus  `json:"state"`
	Reason    string     `json:"reason,omitempty"`
	ScriptURL string     `json:"script_url,omitempty"`
	LoadedAt  *time.Time `json:"loaded_at,omitempty"`
}

// MapOptions - параметры создания карты
type MapOptions struct {
	Center Coordinates `json:"center"`
	Zoom   int         `json:"zoom"`
}

// MarkerIcon - внешний вид маркера
type MarkerIcon struct {
	Variant string  `json:"variant"`
	Scale   float64 `json:"scale"`
	Fill    string  `json:"fill"`
	Stroke  string  `json:"stroke"`
	AnchorX int     `json:"anchor_x"`
	AnchorY int     `json:"anchor_y"`
}

// MarkerSpec - описание маркера для провайдера
type MarkerSpec struct {
	PropertyID string      `json:"property_id"`
	Title      string      `json:"title"`
	Position   Coordinates `json:"position"`
	Icon       MarkerIcon  `json:"icon"`
}

// Marker - маркер, размещённый на карте
type Marker struct {
	ID string `json:"id"`
	MarkerSpec
}

// MapSnapshot - текущее состояние карты у провайдера
type MapSnapshot struct {
	Created bool        `json:"created"`
	Center  Coordinates `json:"center"`
	Zoom    int         `json:"zoom"`
	Markers []Marker    `json:"markers"`
}
