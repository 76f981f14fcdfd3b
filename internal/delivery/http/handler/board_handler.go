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

type BoardHandler struct {
	boardUC *usecase.BoardUseCase
	logger  *zap.Logger
}

func NewBoardHandler(boardUC *usecase.BoardUseCase, logger *zap.Logger) *BoardHandler {
	return &BoardHandler{
		boardUC: boardUC,
		logger:  logger,
	}
}

// GetBoard godoc
// @Summary Снимок доски объявлений
// @Description Список, карта, выбор и панель деталей одним ответом. Если передан q, он становится текущим поисковым запросом.
// @Tags Board
// @Produce json
// @Param q query string false "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.BoardResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/board [get]
func (h *BoardHandler) GetBoard(c *fiber.Ctx) error {
	if c.Request().URI().QueryArgs().Has("q") {
		req := dto.SearchQueryRequest{Query: c.Query("q")}
		if err := validator.Validate(&req); err != nil {
			return utils.SendError(c, err)
		}
		if err := h.boardUC.SetQuery(c.Context(), req.Query); err != nil {
			return utils.SendError(c, err)
		}
	}

	return h.sendSnapshot(c)
}

// SetQuery godoc
// @Summary Изменить поисковый запрос
// @Tags Board
// @Accept json
// @Produce json
// @Param request body dto.SearchQueryRequest true "Поисковый запрос"
// @Success 200 {object} utils.SuccessResponse{data=dto.BoardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/board/query [put]
func (h *BoardHandler) SetQuery(c *fiber.Ctx) error {
	var req dto.SearchQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, apperrors.ErrInvalidRequest.WithMessage("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.boardUC.SetQuery(c.Context(), req.Query); err != nil {
		return utils.SendError(c, err)
	}

	return h.sendSnapshot(c)
}

func (h *BoardHandler) sendSnapshot(c *fiber.Ctx) error {
	snapshot, err := h.boardUC.Snapshot(c.Context())
	if err != nil {
		h.logger.Error("Failed to build board snapshot", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, snapshot, &utils.Meta{
		Total:       snapshot.Total,
		ResultCount: snapshot.ResultCount,
		Query:       snapshot.Query,
	})
}
