package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		expected string
	}{
		{"below one eok", 5000, "5000만"},
		{"eok with remainder", 12000, "1억 2000만"},
		{"exact eok", 10000, "1억"},
		{"zero", 0, "0만"},
		{"large sale price", 150000, "15억"},
		{"large with small remainder", 120001, "12억 1만"},
		{"just below threshold", 9999, "9999만"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPrice(tt.price))
		})
	}
}

func TestFormatMonthlyRent(t *testing.T) {
	assert.Equal(t, "50만", FormatMonthlyRent(50, "만"))
	assert.Equal(t, "15000만원", FormatMonthlyRent(15000, "만원"))
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "84㎡", FormatArea(84))
	assert.Equal(t, "33.5㎡", FormatArea(33.5))
}

func TestFormatCoordinates(t *testing.T) {
	assert.Equal(t, "위도: 37.497, 경도: 127.028", FormatCoordinates(37.497, 127.028))
}

func TestFormatDateKR(t *testing.T) {
	d := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024. 1. 15.", FormatDateKR(d))
}

func TestJitterCoordinate(t *testing.T) {
	assert.Equal(t, 37.55, JitterCoordinate(37.5, 0.1, func() float64 { return 0.5 }))
	assert.Equal(t, 127.0, JitterCoordinate(127.0, 0.1, func() float64 { return 0 }))
}
