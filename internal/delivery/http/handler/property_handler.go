package handler

import (
	"github.com/gofiber/fiber/v2"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/validator"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
	"go.uber.org/zap"
)

// PropertyHandler - форма создания, панель деталей и список объявлений
type PropertyHandler struct {
	propertyUC *usecase.PropertyUseCase
	logger     *zap.Logger
}

func NewPropertyHandler(propertyUC *usecase.PropertyUseCase, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		propertyUC: propertyUC,
		logger:     logger,
	}
}

// List godoc
// @Summary Список объявлений
// @Description Строки списка в порядке store, отфильтрованные по подстроке в title, address или description. Состояние доски не меняется.
// @Tags Properties
// @Produce json
// @Param q query string false "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.ListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/properties [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	query := c.Query("q")

	result, err := h.propertyUC.Search(c.Context(), query)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Query: query,
	})
}

// Create godoc
// @Summary Создать объявление
// @Description Новое объявление добавляется в начало списка. Без lat/lng координаты подставляются рядом с 37.5, 127.0.
// @Tags Properties
// @Accept json
// @Produce json
// @Param request body dto.PropertyRequest true "Объявление"
// @Success 201 {object} utils.SuccessResponse{data=dto.PropertyDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/properties [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.propertyUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// Get godoc
// @Summary Детали объявления
// @Tags Properties
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyDetail}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [get]
func (h *PropertyHandler) Get(c *fiber.Ctx) error {
	result, err := h.propertyUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Сохранить изменения объявления
// @Description ID и дата создания не меняются. Без lat/lng сохраняются прежние координаты.
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path string true "ID объявления"
// @Param request body dto.PropertyRequest true "Объявление"
// @Success 200 {object} utils.SuccessResponse{data=dto.PropertyDetail}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	var req dto.PropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.propertyUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Delete godoc
// @Summary Удалить объявление
// @Description Требует подтверждения confirm=true. Если объявление было выбрано или открыто, выбор и панель деталей сбрасываются.
// @Tags Properties
// @Produce json
// @Param id path string true "ID объявления"
// @Param confirm query bool true "Подтверждение удаления"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 428 {object} utils.ErrorResponse
// @Router /api/v1/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.propertyUC.Delete(c.Context(), id, c.QueryBool("confirm", false)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{
		"id":      id,
		"deleted": true,
	}, nil)
}
