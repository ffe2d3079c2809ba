package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	domain "bridge-lending-backend/internal/domain/pricing"
	"bridge-lending-backend/internal/usecase/pricing"

	"github.com/labstack/echo/v4"
)

const keyTermMonths = "term_months"

type PricingHandler struct{ uc *pricing.Usecase }

func NewPricingHandler(uc *pricing.Usecase) *PricingHandler { return &PricingHandler{uc: uc} }

type estimateReq struct {
	FicoTier string `validate:"ficotier"`
}

type chooseReq struct {
	TermMonths int `validate:"term"`
}

// Estimate always answers 200; failed checks are listed in the quote.
func (h *PricingHandler) Estimate(c echo.Context) error {
	form, err := readForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	// unknown tiers still price (as the worst tier); only report them
	quote := h.uc.Estimate(c.Request().Context(), form)
	if err := c.Validate(&estimateReq{FicoTier: strings.ToLower(strings.TrimSpace(form[domain.KeyFicoScore]))}); err != nil {
		c.Response().Header().Set("X-Input-Warning", "unknown estimated_fico_score")
	}
	return c.JSON(http.StatusOK, quote)
}

func (h *PricingHandler) Choose(c echo.Context) error {
	form, err := readForm(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	rawTerm, ok := form[keyTermMonths]
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: keyTermMonths, Message: "is required"}},
		})
	}
	delete(form, keyTermMonths)

	term, err := strconv.Atoi(strings.TrimSpace(rawTerm))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: keyTermMonths, Message: "must be an integer"}},
		})
	}
	if err := c.Validate(&chooseReq{TermMonths: term}); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	sel, err := h.uc.Choose(c.Request().Context(), form, term)
	switch {
	case errors.Is(err, domain.ErrNotQualified):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrUnknownTerm):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case err != nil:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, sel)
}
