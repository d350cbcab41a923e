package handlers

import (
	"errors"
	request "manutencao_xpto/internal/adapter/http/dto/request"
	response "manutencao_xpto/internal/adapter/http/dto/response"
	"manutencao_xpto/internal/usecase"
	"manutencao_xpto/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBudgetPayload = pkg.NewDomainErrorSimple("INVALID_BUDGET_INPUT", "Invalid budget payload", http.StatusBadRequest)
)

// BudgetHandler handles HTTP requests for budgets and their promotion into
// service orders.

type BudgetHandler struct {
	usecase usecase.IBudgetUseCase
}

func NewBudgetHandler(uc usecase.IBudgetUseCase) *BudgetHandler {
	return &BudgetHandler{usecase: uc}
}

func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	var payload request.CreateBudgetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBudgetPayload.HTTPStatus, errInvalidBudgetPayload.ToHTTPError())
		return
	}

	budget, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// ListBudgets lists all budgets, or only promotion-eligible ones when
// eligible=true is passed.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	list := h.usecase.List
	if c.Query("eligible") == "true" {
		list = h.usecase.ListEligible
	}

	budgets, err := list(c.Request.Context())
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudgets(budgets))
}

func (h *BudgetHandler) ApproveBudget(c *gin.Context) {
	budget, err := h.usecase.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

func (h *BudgetHandler) RejectBudget(c *gin.Context) {
	budget, err := h.usecase.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBudget(budget))
}

// PromoteBudget turns an approved, not-yet-promoted budget into a service
// order and links the two.
func (h *BudgetHandler) PromoteBudget(c *gin.Context) {
	budget, err := h.usecase.PromoteToServiceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapBudgetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBudget(budget))
}

func mapBudgetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBudgetID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, usecase.ErrInvalidBudgetAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBudgetNotFound):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_FOUND", "Budget not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrBudgetNotPending):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_PENDING", "Budget is no longer pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetNotEligible):
		return pkg.NewDomainErrorSimple("BUDGET_NOT_ELIGIBLE", "Budget is not eligible for a service order", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetAlreadyPromoted):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_PROMOTED", "Budget already originated a service order", http.StatusConflict)
	default:
		if appErr, ok := storeUnavailableError(err); ok {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
