package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
	"go.uber.org/zap"
)

// Опорная точка для координат по умолчанию: base + rand*spread.
// Заглушка вместо геокодинга.
const (
	defaultLatBase    = 37.5
	defaultLngBase    = 127.0
	coordinatesSpread = 0.1
)

type PropertyUseCase struct {
	repo      repository.PropertyRepository
	selection *SelectionCoordinator
	logger    *zap.Logger

	now    func() time.Time
	random func() float64
	newID  func() string
}

type PropertyOption func(*PropertyUseCase)

func WithClock(now func() time.Time) PropertyOption {
	return func(uc *PropertyUseCase) { uc.now = now }
}

// WithRandom задаёт источник случайных чисел из [0, 1) для координат по умолчанию
func WithRandom(random func() float64) PropertyOption {
	return func(uc *PropertyUseCase) { uc.random = random }
}

func WithIDGenerator(newID func() string) PropertyOption {
	return func(uc *PropertyUseCase) { uc.newID = newID }
}

func NewPropertyUseCase(
	repo repository.PropertyRepository,
	selection *SelectionCoordinator,
	logger *zap.Logger,
	opts ...PropertyOption,
) *PropertyUseCase {
	uc := &PropertyUseCase{
		repo:      repo,
		selection: selection,
		logger:    logger,
		now:       time.Now,
		random:    rand.Float64,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create - форма создания: присваивает ID и CreatedAt и добавляет объявление в начало списка
func (uc *PropertyUseCase) Create(ctx context.Context, req dto.PropertyRequest) (*dto.PropertyDetail, error) {
	data, err := uc.buildData(req, nil)
	if err != nil {
		return nil, err
	}

	property := &domain.Property{
		ID:           uc.newID(),
		PropertyData: data,
		CreatedAt:    uc.now(),
	}

	id, err := uc.repo.Add(ctx, property)
	if err != nil {
		uc.logger.Error("Failed to add property", zap.Error(err))
		return nil, mapDomainError(err)
	}

	uc.logger.Info("Property created",
		zap.String("property_id", id),
		zap.String("transaction_type", string(data.Deal.TransactionType())))

	return newPropertyDetail(property), nil
}

func (uc *PropertyUseCase) Get(ctx context.Context, id string) (*dto.PropertyDetail, error) {
	property, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return newPropertyDetail(property), nil
}

// Update - сохранение из панели деталей. ID и CreatedAt не меняются;
// если координаты не переданы, остаются прежние.
func (uc *PropertyUseCase) Update(ctx context.Context, id string, req dto.PropertyRequest) (*dto.PropertyDetail, error) {
	existing, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, mapDomainError(err)
	}

	data, err := uc.buildData(req, &existing.Coordinates)
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.Update(ctx, id, data)
	if err != nil {
		uc.logger.Warn("Failed to update property", zap.String("property_id", id), zap.Error(err))
		return nil, mapDomainError(err)
	}

	uc.logger.Info("Property updated", zap.String("property_id", id))
	return newPropertyDetail(updated), nil
}

// Delete удаляет объявление только с подтверждением и сбрасывает выбор/детали,
// если они указывали на него. Неизвестный ID - PROPERTY_NOT_FOUND без изменений.
func (uc *PropertyUseCase) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrConfirmationRequired
	}

	if err := uc.repo.Remove(ctx, id); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			uc.logger.Debug("Delete of unknown property ignored", zap.String("property_id", id))
		}
		return mapDomainError(err)
	}

	uc.selection.Forget(id)
	uc.logger.Info("Property deleted", zap.String("property_id", id))
	return nil
}

// Search - отфильтрованный список без изменения состояния доски
func (uc *PropertyUseCase) Search(ctx context.Context, query string) (*dto.ListResponse, error) {
	properties, err := uc.repo.List(ctx)
	if err != nil {
		return nil, mapDomainError(err)
	}

	resp := buildList(FilterProperties(properties, query), uc.selection.State().SelectedID)
	return &resp, nil
}

func (uc *PropertyUseCase) buildData(req dto.PropertyRequest, fallback *domain.Coordinates) (domain.PropertyData, error) {
	if req.Price == nil || req.Area == nil {
		return domain.PropertyData{}, apperrors.ErrValidationFailed.WithMessage("price and area are required")
	}

	deal, err := domain.NewDeal(domain.TransactionType(req.TransactionType), *req.Price, req.Deposit, req.MonthlyRent)
	if err != nil {
		return domain.PropertyData{}, mapDomainError(err)
	}

	var floor *string
	if f := strings.TrimSpace(req.Floor); f != "" {
		floor = &f
	}

	data := domain.PropertyData{
		Title:       req.Title,
		Address:     req.Address,
		Description: req.Description,
		Type:        domain.PropertyType(req.PropertyType),
		Deal:        deal,
		Area:        *req.Area,
		Floor:       floor,
		Coordinates: uc.resolveCoordinates(req.Lat, req.Lng, fallback),
	}

	if err := data.Validate(); err != nil {
		return domain.PropertyData{}, mapDomainError(err)
	}
	return data, nil
}

func (uc *PropertyUseCase) resolveCoordinates(lat, lng *float64, fallback *domain.Coordinates) domain.Coordinates {
	var c domain.Coordinates
	switch {
	case lat != nil:
		c.Lat = *lat
	case fallback != nil:
		c.Lat = fallback.Lat
	default:
		c.Lat = utils.JitterCoordinate(defaultLatBase, coordinatesSpread, uc.random)
	}
	switch {
	case lng != nil:
		c.Lng = *lng
	case fallback != nil:
		c.Lng = fallback.Lng
	default:
		c.Lng = utils.JitterCoordinate(defaultLngBase, coordinatesSpread, uc.random)
	}
	return c
}

// mapDomainError переводит ошибки домена в ошибки API
func mapDomainError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrPropertyNotFound):
		return apperrors.ErrPropertyNotFound
	case errors.Is(err, domain.ErrDuplicateProperty):
		return apperrors.ErrDuplicateProperty
	case errors.Is(err, domain.ErrInvalidCoordinates):
		return apperrors.ErrInvalidCoordinates
	case errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrNegativeArea),
		errors.Is(err, domain.ErrUnknownPropertyType),
		errors.Is(err, domain.ErrUnknownTransactionType),
		errors.Is(err, domain.ErrMissingDeal),
		errors.Is(err, domain.ErrMissingID):
		return apperrors.ErrInvalidRequest.WithMessage(err.Error())
	default:
		return err
	}
}
