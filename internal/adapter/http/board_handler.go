package http

import (
	"errors"
	"net/http"

	"bridge-lending-backend/internal/domain/kanban"
	"bridge-lending-backend/internal/usecase/board"

	"github.com/labstack/echo/v4"
)

type BoardHandler struct{ uc *board.Usecase }

func NewBoardHandler(uc *board.Usecase) *BoardHandler { return &BoardHandler{uc: uc} }

type moveCardReq struct {
	CardID         flexString `json:"card_id"          form:"card_id"`
	TargetColumnID flexString `json:"target_column_id" form:"target_column_id"`
	Position       flexString `json:"position"         form:"position"`
}

type addColumnReq struct {
	Title       string `json:"title"        form:"title"        validate:"required,max=120"`
	ColumnOrder *int   `json:"column_order" form:"column_order" validate:"omitempty,gte=0"`
}

// boardError writes the {error_code, message} payload. Causes stay in the logs.
func boardError(c echo.Context, err error) error {
	var ke *kanban.Error
	if !errors.As(err, &ke) {
		ke = kanban.NewError(kanban.ErrCodeCommitFailed, "internal error")
	}
	status := http.StatusInternalServerError
	switch {
	case kanban.IsValidation(ke):
		status = http.StatusBadRequest
	case ke.Code == kanban.ErrCodeColumnNotFound:
		status = http.StatusNotFound
	}
	return c.JSON(status, kanban.Error{Code: ke.Code, Message: ke.Message})
}

func (h *BoardHandler) MoveCard(c echo.Context) error {
	var req moveCardReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, kanban.NewError(kanban.ErrCodeMissingParameters, "invalid body"))
	}
	res, err := h.uc.MoveCard(c.Request().Context(), board.MoveCardInput{
		CardID:         string(req.CardID),
		TargetColumnID: string(req.TargetColumnID),
		Position:       string(req.Position),
	})
	if err != nil {
		return boardError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *BoardHandler) ListColumns(c echo.Context) error {
	cols, err := h.uc.ListColumns(c.Request().Context())
	if err != nil {
		return boardError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"columns": cols})
}

func (h *BoardHandler) AddColumn(c echo.Context) error {
	var req addColumnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.AddColumn(c.Request().Context(), board.AddColumnInput{Title: req.Title, ColumnOrder: req.ColumnOrder})
	if err != nil {
		return boardError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BoardHandler) DeleteColumn(c echo.Context) error {
	if err := h.uc.DeleteColumn(c.Request().Context(), c.Param("id")); err != nil {
		return boardError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
