package handlers

import (
	"errors"
	request "manutencao_xpto/internal/adapter/http/dto/request"
	response "manutencao_xpto/internal/adapter/http/dto/response"
	"manutencao_xpto/internal/usecase"
	"manutencao_xpto/pkg"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequisitionPayload = pkg.NewDomainErrorSimple("INVALID_REQUISITION_INPUT", "Invalid parts requisition payload", http.StatusBadRequest)
)

// PartsRequisitionHandler handles HTTP requests for parts requisitions and the
// item triage workflow.

type PartsRequisitionHandler struct {
	usecase usecase.IPartsRequisitionUseCase
}

func NewPartsRequisitionHandler(uc usecase.IPartsRequisitionUseCase) *PartsRequisitionHandler {
	return &PartsRequisitionHandler{usecase: uc}
}

func (h *PartsRequisitionHandler) CreateRequisition(c *gin.Context) {
	var payload request.CreatePartsRequisitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisitionPayload.HTTPStatus, errInvalidRequisitionPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPartsRequisition(req))
}

func (h *PartsRequisitionHandler) GetRequisition(c *gin.Context) {
	req, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequisition(req))
}

// ListRequisitions lists requisitions for the service order given in the
// required "service_order_id" query parameter.
func (h *PartsRequisitionHandler) ListRequisitions(c *gin.Context) {
	serviceOrderID := strings.TrimSpace(c.Query("service_order_id"))
	if serviceOrderID == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "service_order_id query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	reqs, err := h.usecase.ListByServiceOrderID(c.Request.Context(), serviceOrderID)
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequisitions(reqs))
}

// TriageItem applies a triage decision to one requisition item. The item
// change and the recomputed requisition status are written back together.
func (h *PartsRequisitionHandler) TriageItem(c *gin.Context) {
	var payload request.TriageItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRequisitionPayload.HTTPStatus, errInvalidRequisitionPayload.ToHTTPError())
		return
	}

	req, err := h.usecase.TriageItem(
		c.Request.Context(),
		c.Param("id"),
		c.Param("item_id"),
		payload.Status,
		payload.TriageNotes,
	)
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequisition(req))
}

// AttachItemImage uploads the multipart "file" field as the item's picture.
func (h *PartsRequisitionHandler) AttachItemImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Image file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_ATTACHMENT", "Could not read image file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	req, err := h.usecase.AttachItemImage(
		c.Request.Context(),
		c.Param("id"),
		c.Param("item_id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		appErr := mapRequisitionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPartsRequisition(req))
}

func mapRequisitionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequisitionID),
		errors.Is(err, usecase.ErrInvalidRequisitionItemID),
		errors.Is(err, usecase.ErrInvalidTechnicianID),
		errors.Is(err, usecase.ErrInvalidRequisitionItems),
		errors.Is(err, usecase.ErrInvalidItemStatus),
		errors.Is(err, usecase.ErrInvalidTriageTarget):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequisitionNotFound):
		return pkg.NewDomainErrorSimple("REQUISITION_NOT_FOUND", "Parts requisition not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequisitionItemNotFound):
		return pkg.NewDomainErrorSimple("REQUISITION_ITEM_NOT_FOUND", "Requisition item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrTriageConflict):
		return pkg.NewDomainErrorSimple("TRIAGE_CONFLICT", "Concurrent triage conflict, retry the request", http.StatusConflict)
	default:
		if appErr, ok := storeUnavailableError(err); ok {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
