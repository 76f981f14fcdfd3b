package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/utils"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
	"go.uber.org/zap"
)

type MapHandler struct {
	boardUC *usecase.BoardUseCase
	loader  repository.MapLoader
	logger  *zap.Logger
}

func NewMapHandler(boardUC *usecase.BoardUseCase, loader repository.MapLoader, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		boardUC: boardUC,
		loader:  loader,
		logger:  logger,
	}
}

// GetMap godoc
// @Summary Состояние карты
// @Description Центр, зум, маркеры видимых объявлений и легенда. Пока скрипт провайдера не загружен, status=loading и маркеров нет.
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MapResponse}
// @Router /api/v1/map [get]
func (h *MapHandler) GetMap(c *fiber.Ctx) error {
	result, err := h.boardUC.MapState(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Markers),
	})
}

// ClickMarker godoc
// @Summary Клик по маркеру
// @Description Выделяет объявление маркера без открытия панели деталей
// @Tags Map
// @Produce json
// @Param markerId path string true "ID маркера"
// @Success 200 {object} utils.SuccessResponse{data=dto.SelectionResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/map/markers/{markerId}/click [post]
func (h *MapHandler) ClickMarker(c *fiber.Ctx) error {
	result, err := h.boardUC.ClickMarker(c.Params("markerId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}

// LoaderStatus godoc
// @Summary Статус загрузки скрипта карты
// @Tags Map
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.LoaderStatus}
// @Router /api/v1/map/loader [get]
func (h *MapHandler) LoaderStatus(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.loader.Status(), nil)
}
