package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrPropertyNotFound       = errors.New("property not found")
	ErrMissingID              = errors.New("property id is required")
	ErrDuplicateProperty      = errors.New("property already exists")
	ErrInvalidCoordinates     = errors.New("invalid coordinates")
	ErrNegativeAmount         = errors.New("amount must be non-negative")
	ErrNegativeArea           = errors.New("area must be non-negative")
	ErrUnknownPropertyType    = errors.New("unknown property type")
	ErrUnknownTransactionType = errors.New("unknown transaction type")
	ErrMissingDeal            = errors.New("deal is required")
)

// PropertyData - редактируемая часть объявления (всё, кроме ID и CreatedAt)
type PropertyData struct {
	Title       string
	Address     string
	Description string
	Type        PropertyType
	Deal        Deal
	Area        float64
	// Floor - свободный текст ("12층", "전층"); nil, если этаж не указан
	Floor       *string
	Coordinates Coordinates
}

// Validate проверяет инварианты объявления
func (d *PropertyData) Validate() error {
	if !d.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPropertyType, d.Type)
	}
	if d.Deal == nil {
		return ErrMissingDeal
	}
	price, deposit, rent := DealAmounts(d.Deal)
	if price < 0 || (deposit != nil && *deposit < 0) || (rent != nil && *rent < 0) {
		return ErrNegativeAmount
	}
	if d.Area < 0 {
		return ErrNegativeArea
	}
	if !d.Coordinates.Valid() {
		return ErrInvalidCoordinates
	}
	return nil
}

// Property - объявление о недвижимости
type Property struct {
	ID string
	PropertyData
	CreatedAt time.Time
}

// Clone возвращает глубокую копию, чтобы наружу не утекали ссылки на состояние store
func (p *Property) Clone() *Property {
	if p == nil {
		return nil
	}
	c := *p
	if p.Floor != nil {
		f := *p.Floor
		c.Floor = &f
	}
	c.Deal = cloneDeal(p.Deal)
	return &c
}

// propertyJSON - плоское представление для событий и сидов
type propertyJSON struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Address         string          `json:"address"`
	Description     string          `json:"description"`
	PropertyType    PropertyType    `json:"property_type"`
	TransactionType TransactionType `json:"transaction_type"`
	Price           int64           `json:"price"`
	Deposit         *int64          `json:"deposit,omitempty"`
	MonthlyRent     *int64          `json:"monthly_rent,omitempty"`
	Area            float64         `json:"area"`
	Floor           *string         `json:"floor,omitempty"`
	Coordinates     Coordinates     `json:"coordinates"`
	CreatedAt       time.Time       `json:"created_at"`
}

func (p Property) MarshalJSON() ([]byte, error) {
	price, deposit, rent := DealAmounts(p.Deal)
	var tt TransactionType
	if p.Deal != nil {
		tt = p.Deal.TransactionType()
	}
	return json.Marshal(propertyJSON{
		ID:              p.ID,
		Title:           p.Title,
		Address:         p.Address,
		Description:     p.Description,
		PropertyType:    p.Type,
		TransactionType: tt,
		Price:           price,
		Deposit:         deposit,
		MonthlyRent:     rent,
		Area:            p.Area,
		Floor:           p.Floor,
		Coordinates:     p.Coordinates,
		CreatedAt:       p.CreatedAt,
	})
}

func (p *Property) UnmarshalJSON(data []byte) error {
	var raw propertyJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	deal, err := NewDeal(raw.TransactionType, raw.Price, raw.Deposit, raw.MonthlyRent)
	if err != nil {
		return err
	}
	*p = Property{
		ID: raw.ID,
		PropertyData: PropertyData{
			Title:       raw.Title,
			Address:     raw.Address,
			Description: raw.Description,
			Type:        raw.PropertyType,
			Deal:        deal,
			Area:        raw.Area,
			Floor:       raw.Floor,
			Coordinates: raw.Coordinates,
		},
		CreatedAt: raw.CreatedAt,
	}
	return nil
}
