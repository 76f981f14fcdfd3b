package domain

import "fmt"

// Deal - условия сделки. Вариант определяется типом сделки и несёт только
// допустимые для него поля: залог и ежемесячная плата есть только у месячной аренды.
type Deal interface {
	TransactionType() TransactionType
	// Amount - основная цена в 만원 (для месячной аренды - залог из формы)
	Amount() int64
	isDeal()
}

// SaleDeal - продажа (매매)
type SaleDeal struct {
	Price int64
}

func (SaleDeal) TransactionType() TransactionType { return TransactionTypeSale }
func (d SaleDeal) Amount() int64                  { return d.Price }
func (SaleDeal) isDeal()                          {}

// RentDeal - долгосрочная аренда с единовременным депозитом (전세)
type RentDeal struct {
	Price int64
}

func (RentDeal) TransactionType() TransactionType { return TransactionTypeRent }
func (d RentDeal) Amount() int64                  { return d.Price }
func (RentDeal) isDeal()                          {}

// MonthlyRentDeal - месячная аренда (월세)
type MonthlyRentDeal struct {
	Price       int64
	Deposit     *int64
	MonthlyRent *int64
}

func (MonthlyRentDeal) TransactionType() TransactionType { return TransactionTypeMonthlyRent }
func (d MonthlyRentDeal) Amount() int64                  { return d.Price }
func (MonthlyRentDeal) isDeal()                          {}

// NewDeal собирает вариант сделки. Для sale/rent deposit и monthlyRent отбрасываются.
func NewDeal(t TransactionType, price int64, deposit, monthlyRent *int64) (Deal, error) {
	if price < 0 {
		return nil, ErrNegativeAmount
	}

	switch t {
	case TransactionTypeSale:
		return SaleDeal{Price: price}, nil
	case TransactionTypeRent:
		return RentDeal{Price: price}, nil
	case TransactionTypeMonthlyRent:
		if deposit != nil && *deposit < 0 {
			return nil, ErrNegativeAmount
		}
		if monthlyRent != nil && *monthlyRent < 0 {
			return nil, ErrNegativeAmount
		}
		return MonthlyRentDeal{
			Price:       price,
			Deposit:     copyInt64(deposit),
			MonthlyRent: copyInt64(monthlyRent),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransactionType, t)
	}
}

// cloneDeal копирует вариант как есть, без повторной валидации.
// Указатели на варианты приводятся к значениям.
func cloneDeal(d Deal) Deal {
	switch v := d.(type) {
	case nil:
		return nil
	case MonthlyRentDeal:
		v.Deposit = copyInt64(v.Deposit)
		v.MonthlyRent = copyInt64(v.MonthlyRent)
		return v
	case *MonthlyRentDeal:
		if v == nil {
			return nil
		}
		return cloneDeal(*v)
	case *SaleDeal:
		if v == nil {
			return nil
		}
		return *v
	case *RentDeal:
		if v == nil {
			return nil
		}
		return *v
	default:
		return d
	}
}

// DealAmounts раскладывает сделку в плоские поля (price, deposit, monthlyRent)
func DealAmounts(d Deal) (int64, *int64, *int64) {
	if d == nil {
		return 0, nil, nil
	}
	if m, ok := d.(MonthlyRentDeal); ok {
		return m.Price, copyInt64(m.Deposit), copyInt64(m.MonthlyRent)
	}
	return d.Amount(), nil, nil
}

func copyInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
