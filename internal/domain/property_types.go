package domain

// PropertyType - вид недвижимости
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeOfficetel  PropertyType = "officetel"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeCommercial PropertyType = "commercial"
)

var propertyTypeLabels = map[PropertyType]string{
	PropertyTypeApartment:  "아파트",
	PropertyTypeOfficetel:  "오피스텔",
	PropertyTypeVilla:      "빌라",
	PropertyTypeHouse:      "단독주택",
	PropertyTypeCommercial: "상가",
}

func (t PropertyType) Valid() bool {
	_, ok := propertyTypeLabels[t]
	return ok
}

// Label - подпись для интерфейса
func (t PropertyType) Label() string {
	return propertyTypeLabels[t]
}

// TransactionType - тип сделки
type TransactionType string

const (
	TransactionTypeSale        TransactionType = "sale"
	TransactionTypeRent        TransactionType = "rent"
	TransactionTypeMonthlyRent TransactionType = "monthly-rent"
)

var transactionTypeLabels = map[TransactionType]string{
	TransactionTypeSale:        "매매",
	TransactionTypeRent:        "전세",
	TransactionTypeMonthlyRent: "월세",
}

func (t TransactionType) Valid() bool {
	_, ok := transactionTypeLabels[t]
	return ok
}

func (t TransactionType) Label() string {
	return transactionTypeLabels[t]
}
