package dto

// PropertyRequest - форма создания/редактирования объявления.
// Суммы в 만원; deposit и monthly_rent учитываются только для monthly-rent.
// Если lat или lng не переданы, координата подставляется рядом с опорной точкой.
type PropertyRequest struct {
	Title           string   `json:"title" validate:"required"`
	Address         string   `json:"address" validate:"required"`
	PropertyType    string   `json:"property_type" validate:"required,oneof=apartment officetel villa house commercial"`
	TransactionType string   `json:"transaction_type" validate:"required,oneof=sale rent monthly-rent"`
	Price           *int64   `json:"price" validate:"required,gte=0"`
	Deposit         *int64   `json:"deposit,omitempty" validate:"omitempty,gte=0"`
	MonthlyRent     *int64   `json:"monthly_rent,omitempty" validate:"omitempty,gte=0"`
	Area            *float64 `json:"area" validate:"required,gte=0"`
	Floor           string   `json:"floor,omitempty"`
	Description     string   `json:"description"`
	Lat             *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng             *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

// SearchQueryRequest - строка поиска для доски объявлений
type SearchQueryRequest struct {
	Query string `json:"query" validate:"max=200"`
}
