package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
	"go.uber.org/zap"
)

// SelectionHandler - общее выделение карты и списка
type SelectionHandler struct {
	boardUC *usecase.BoardUseCase
	logger  *zap.Logger
}

func NewSelectionHandler(boardUC *usecase.BoardUseCase, logger *zap.Logger) *SelectionHandler {
	return &SelectionHandler{
		boardUC: boardUC,
		logger:  logger,
	}
}

// Get godoc
// @Summary Текущий выбор
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Router /api/v1/selection [get]
func (h *SelectionHandler) Get(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.boardUC.Selection(), nil)
}

// SelectFromMap godoc
// @Summary Выбор с карты
// @Description Выделяет объявление; панель деталей не открывается
// @Tags Selection
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/selection/map/{id} [post]
func (h *SelectionHandler) SelectFromMap(c *fiber.Ctx) error {
	result, err := h.boardUC.SelectFromMap(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// SelectFromList godoc
// @Summary Выбор из списка
// @Description Выделяет объявление и открывает панель деталей
// @Tags Selection
// @Produce json
// @Param id path string true "ID объявления"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/selection/list/{id} [post]
func (h *SelectionHandler) SelectFromList(c *fiber.Ctx) error {
	result, err := h.boardUC.SelectFromList(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// Close godoc
// @Summary Закрыть панель деталей
// @Description Снимает выделение и закрывает панель деталей
// @Tags Selection
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Router /api/v1/selection [delete]
func (h *SelectionHandler) Close(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.boardUC.CloseDetail(), nil)
}
