package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validData() PropertyData {
	floor := "12층"
	return PropertyData{
		Title:       "강남역 신축 오피스텔",
		Address:     "서울시 강남구 테헤란로 123",
		Description: "역세권 신축 오피스텔",
		Type:        PropertyTypeOfficetel,
		Deal:        MonthlyRentDeal{Price: 5000, Deposit: int64Ptr(5000), MonthlyRent: int64Ptr(50)},
		Area:        33,
		Floor:       &floor,
		Coordinates: Coordinates{Lat: 37.497, Lng: 127.028},
	}
}

func TestPropertyData_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(d *PropertyData)
		expectedErr error
	}{
		{name: "valid", mutate: func(d *PropertyData) {}},
		{name: "unknown type", mutate: func(d *PropertyData) { d.Type = "castle" }, expectedErr: ErrUnknownPropertyType},
		{name: "missing deal", mutate: func(d *PropertyData) { d.Deal = nil }, expectedErr: ErrMissingDeal},
		{name: "negative price", mutate: func(d *PropertyData) { d.Deal = SaleDeal{Price: -10} }, expectedErr: ErrNegativeAmount},
		{name: "negative area", mutate: func(d *PropertyData) { d.Area = -1 }, expectedErr: ErrNegativeArea},
		{name: "latitude out of range", mutate: func(d *PropertyData) { d.Coordinates.Lat = 95 }, expectedErr: ErrInvalidCoordinates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validData()
			tt.mutate(&d)
			err := d.Validate()
			if tt.expectedErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestProperty_CloneIsDeep(t *testing.T) {
	p := &Property{ID: "1", PropertyData: validData(), CreatedAt: time.Now()}
	c := p.Clone()

	*c.Floor = "1층"
	deal := c.Deal.(MonthlyRentDeal)
	*deal.Deposit = 1

	assert.Equal(t, "12층", *p.Floor)
	assert.Equal(t, int64(5000), *p.Deal.(MonthlyRentDeal).Deposit)
}

func TestProperty_CloneKeepsDealVariant(t *testing.T) {
	tests := []struct {
		name string
		deal Deal
		want Deal
	}{
		{"sale", SaleDeal{Price: 15000}, SaleDeal{Price: 15000}},
		{"rent", RentDeal{Price: 30000}, RentDeal{Price: 30000}},
		{"invalid amount is copied as is", SaleDeal{Price: -1}, SaleDeal{Price: -1}},
		{"pointer variant", &RentDeal{Price: 7}, RentDeal{Price: 7}},
		{"monthly rent without amounts", MonthlyRentDeal{Price: 100}, MonthlyRentDeal{Price: 100}},
		{"no deal", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validData()
			data.Deal = tt.deal
			p := &Property{ID: "1", PropertyData: data}

			assert.Equal(t, tt.want, p.Clone().Deal)
		})
	}
}

func TestProperty_JSONIsFlat(t *testing.T) {
	created := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	p := Property{ID: "1", PropertyData: validData(), CreatedAt: created}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "monthly-rent", raw["transaction_type"])
	assert.Equal(t, float64(50), raw["monthly_rent"])
	assert.Equal(t, "officetel", raw["property_type"])

	var decoded Property
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p.ID, decoded.ID)
	assert.Equal(t, p.Deal, decoded.Deal)
	assert.True(t, created.Equal(decoded.CreatedAt))
}

func TestCoordinates_Valid(t *testing.T) {
	assert.True(t, Coordinates{Lat: 37.5665, Lng: 126.978}.Valid())
	assert.False(t, Coordinates{Lat: -91, Lng: 0}.Valid())
	assert.False(t, Coordinates{Lat: 0, Lng: 200}.Valid())
}
