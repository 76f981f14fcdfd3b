package usecase

import (
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
)

const (
	rowRentUnit    = "만"
	detailRentUnit = "만원"
)

func newPropertyResponse(p *domain.Property) dto.PropertyResponse {
	price, deposit, rent := domain.DealAmounts(p.Deal)
	return dto.PropertyResponse{
		ID:              p.ID,
		Title:           p.Title,
		Address:         p.Address,
		Description:     p.Description,
		PropertyType:    string(p.Type),
		TransactionType: string(p.Deal.TransactionType()),
		Price:           price,
		Deposit:         deposit,
		MonthlyRent:     rent,
		Area:            p.Area,
		Floor:           p.Floor,
		Coordinates:     p.Coordinates,
		CreatedAt:       p.CreatedAt,
	}
}

// dealTexts - отформатированные суммы. Залог и месячная плата показываются
// только для monthly-rent и только если они больше нуля.
func dealTexts(d domain.Deal, rentUnit string) (priceText, depositText, rentText string) {
	price, deposit, rent := domain.DealAmounts(d)
	priceText = utils.FormatPrice(price)
	if d.TransactionType() != domain.TransactionTypeMonthlyRent {
		return priceText, "", ""
	}
	if deposit != nil && *deposit > 0 {
		depositText = utils.FormatPrice(*deposit)
	}
	if rent != nil && *rent > 0 {
		rentText = utils.FormatMonthlyRent(*rent, rentUnit)
	}
	return priceText, depositText, rentText
}

func newPropertyRow(p *domain.Property, selected bool) dto.PropertyRow {
	priceText, depositText, rentText := dealTexts(p.Deal, rowRentUnit)

	row := dto.PropertyRow{
		ID:                   p.ID,
		Title:                p.Title,
		Address:              p.Address,
		PropertyType:         string(p.Type),
		PropertyTypeLabel:    p.Type.Label(),
		TransactionType:      string(p.Deal.TransactionType()),
		TransactionTypeLabel: p.Deal.TransactionType().Label(),
		PriceText:            priceText,
		DepositText:          depositText,
		MonthlyRentText:      rentText,
		AreaText:             utils.FormatArea(p.Area),
		Selected:             selected,
	}
	if p.Floor != nil {
		row.Floor = *p.Floor
	}
	return row
}

func newPropertyDetail(p *domain.Property) *dto.PropertyDetail {
	priceText, depositText, rentText := dealTexts(p.Deal, detailRentUnit)

	return &dto.PropertyDetail{
		PropertyResponse:     newPropertyResponse(p),
		PropertyTypeLabel:    p.Type.Label(),
		TransactionTypeLabel: p.Deal.TransactionType().Label(),
		PriceText:            priceText,
		DepositText:          depositText,
		MonthlyRentText:      rentText,
		AreaText:             utils.FormatArea(p.Area),
		CoordinatesText:      utils.FormatCoordinates(p.Coordinates.Lat, p.Coordinates.Lng),
		CreatedAtText:        utils.FormatDateKR(p.CreatedAt),
	}
}

func newSelectionResponse(s SelectionState) dto.SelectionResponse {
	resp := dto.SelectionResponse{DetailOpen: s.DetailOpen()}
	if s.SelectedID != "" {
		id := s.SelectedID
		resp.SelectedID = &id
	}
	if s.DetailID != "" {
		id := s.DetailID
		resp.DetailID = &id
	}
	return resp
}
