package utils

import (
	"fmt"
	"strconv"
	"time"
)

// FormatPrice форматирует сумму в единицах 만원 (10 000 вон):
// 5000 -> "5000만", 12000 -> "1억 2000만", 10000 -> "1억"
func FormatPrice(price int64) string {
	if price >= 10000 {
		billion := price / 10000
		remainder := price % 10000
		if remainder > 0 {
			return fmt.Sprintf("%d억 %d만", billion, remainder)
		}
		return fmt.Sprintf("%d억", billion)
	}
	return fmt.Sprintf("%d만", price)
}

// FormatMonthlyRent - месячная аренда без пересчёта в 억
func FormatMonthlyRent(rent int64, unit string) string {
	return fmt.Sprintf("%d%s", rent, unit)
}

func FormatArea(area float64) string {
	return strconv.FormatFloat(area, 'f', -1, 64) + "㎡"
}

func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("위도: %s, 경도: %s",
		strconv.FormatFloat(lat, 'f', -1, 64),
		strconv.FormatFloat(lng, 'f', -1, 64))
}

// FormatDateKR - дата в стиле ko-KR ("2024. 1. 15.")
func FormatDateKR(t time.Time) string {
	return t.Format("2006. 1. 2.")
}
