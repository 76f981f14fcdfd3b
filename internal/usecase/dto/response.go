package dto

import (
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

// PropertyResponse - объявление в плоском виде
type PropertyResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Address         string             `json:"address"`
	Description     string             `json:"description"`
	PropertyType    string             `json:"property_type"`
	TransactionType string             `json:"transaction_type"`
	Price           int64              `json:"price"`
	Deposit         *int64             `json:"deposit,omitempty"`
	MonthlyRent     *int64             `json:"monthly_rent,omitempty"`
	Area            float64            `json:"area"`
	Floor           *string            `json:"floor,omitempty"`
	Coordinates     domain.Coordinates `json:"coordinates"`
	CreatedAt       time.Time          `json:"created_at"`
}

// PropertyRow - строка списка объявлений
type PropertyRow struct {
	ID                   string `json:"id"`
	Title                string `json:"title"`
	Address              string `json:"address"`
	PropertyType         string `json:"property_type"`
	PropertyTypeLabel    string `json:"property_type_label"`
	TransactionType      string `json:"transaction_type"`
	TransactionTypeLabel string `json:"transaction_type_label"`
	PriceText            string `json:"price_text"`
	DepositText          string `json:"deposit_text,omitempty"`
	MonthlyRentText      string `json:"monthly_rent_text,omitempty"`
	AreaText             string `json:"area_text"`
	Floor                string `json:"floor,omitempty"`
	Selected             bool   `json:"selected"`
}

// ScrollHint - куда прокрутить список после смены выбора
type ScrollHint struct {
	TargetID string `json:"target_id"`
	Behavior string `json:"behavior"`
	Block    string `json:"block"`
}

// ListResponse - представление списка
type ListResponse struct {
	Rows         []PropertyRow `json:"rows"`
	Total        int           `json:"total"`
	EmptyMessage string        `json:"empty_message,omitempty"`
	Scroll       *ScrollHint   `json:"scroll,omitempty"`
}

// PropertyDetail - панель просмотра объявления
type PropertyDetail struct {
	PropertyResponse
	PropertyTypeLabel    string `json:"property_type_label"`
	TransactionTypeLabel string `json:"transaction_type_label"`
	PriceText            string `json:"price_text"`
	DepositText          string `json:"deposit_text,omitempty"`
	MonthlyRentText      string `json:"monthly_rent_text,omitempty"`
	AreaText             string `json:"area_text"`
	CoordinatesText      string `json:"coordinates_text"`
	CreatedAtText        string `json:"created_at_text"`
}

// SelectionResponse - общее состояние выбора для карты и списка
type SelectionResponse struct {
	SelectedID *string `json:"selected_id"`
	DetailID   *string `json:"detail_id"`
	DetailOpen bool    `json:"detail_open"`
}

// MarkerResponse - маркер карты
type MarkerResponse struct {
	ID         string             `json:"id"`
	PropertyID string             `json:"property_id"`
	Title      string             `json:"title"`
	Position   domain.Coordinates `json:"position"`
	Icon       domain.MarkerIcon  `json:"icon"`
	Selected   bool               `json:"selected"`
}

// LegendResponse - легенда карты
type LegendResponse struct {
	Title string `json:"title"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

// MapResponse - представление карты. В состоянии loading маркеров нет,
// клиент показывает Placeholder.
type MapResponse struct {
	Status      string             `json:"status"`
	Placeholder string             `json:"placeholder,omitempty"`
	Center      domain.Coordinates `json:"center"`
	Zoom        int                `json:"zoom"`
	Markers     []MarkerResponse   `json:"markers"`
	Legend      LegendResponse     `json:"legend"`
}

// BoardResponse - полный снимок доски: список, карта, выбор и детали
type BoardResponse struct {
	Query       string            `json:"query"`
	Total       int               `json:"total"`
	ResultCount int               `json:"result_count"`
	List        ListResponse      `json:"list"`
	Map         MapResponse       `json:"map"`
	Selection   SelectionResponse `json:"selection"`
	Detail      *PropertyDetail   `json:"detail,omitempty"`
}
