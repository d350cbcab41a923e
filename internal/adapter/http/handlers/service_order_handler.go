package handlers

import (
	"errors"
	"log"
	request "manutencao_xpto/internal/adapter/http/dto/request"
	response "manutencao_xpto/internal/adapter/http/dto/response"
	"manutencao_xpto/internal/usecase"
	"manutencao_xpto/pkg"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidServiceOrderPayload = pkg.NewDomainErrorSimple("INVALID_SERVICE_ORDER_INPUT", "Invalid service order payload", http.StatusBadRequest)
)

// ServiceOrderHandler handles HTTP requests for the service order lifecycle.

type ServiceOrderHandler struct {
	usecase usecase.IServiceOrderUseCase
}

func NewServiceOrderHandler(uc usecase.IServiceOrderUseCase) *ServiceOrderHandler {
	return &ServiceOrderHandler{usecase: uc}
}

func (h *ServiceOrderHandler) CreateServiceOrder(c *gin.Context) {
	var payload request.CreateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order, time.Now().UTC()))
}

func (h *ServiceOrderHandler) GetServiceOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

func (h *ServiceOrderHandler) ListServiceOrders(c *gin.Context) {
	orders, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrders(orders, time.Now().UTC()))
}

func (h *ServiceOrderHandler) UpdateServiceOrder(c *gin.Context) {
	var payload request.UpdateServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

// TransitionPhase moves an order to the phase named in the payload. Completion
// and cancellation also go through their dedicated endpoints; this one covers
// the workflow board drag-and-drop.
func (h *ServiceOrderHandler) TransitionPhase(c *gin.Context) {
	var payload request.TransitionPhaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.TransitionPhase(c.Request.Context(), c.Param("id"), payload.Phase)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

func (h *ServiceOrderHandler) CompleteServiceOrder(c *gin.Context) {
	var payload request.CompleteServiceOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidServiceOrderPayload.HTTPStatus, errInvalidServiceOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Complete(c.Request.Context(), c.Param("id"), payload.TechnicalConclusion)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

func (h *ServiceOrderHandler) CancelServiceOrder(c *gin.Context) {
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

func (h *ServiceOrderHandler) DeleteServiceOrder(c *gin.Context) {
	id := c.Param("id")
	if err := h.usecase.Delete(c.Request.Context(), id); err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[serviceorder][handler] deleted id=%s", id)

	c.Status(http.StatusNoContent)
}

// AddAttachment uploads the multipart "file" field and appends its public URL
// to the order.
func (h *ServiceOrderHandler) AddAttachment(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Attachment file is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_ATTACHMENT", "Could not read attachment file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	order, err := h.usecase.AddAttachment(
		c.Request.Context(),
		c.Param("id"),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromServiceOrder(order, time.Now().UTC()))
}

// RemoveAttachment detaches the URL given in the "url" query parameter.
func (h *ServiceOrderHandler) RemoveAttachment(c *gin.Context) {
	url := strings.TrimSpace(c.Query("url"))
	if url == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_ATTACHMENT", "Attachment url is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.RemoveAttachment(c.Request.Context(), c.Param("id"), url)
	if err != nil {
		appErr := mapServiceOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromServiceOrder(order, time.Now().UTC()))
}

func mapServiceOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceOrderID),
		errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidEquipmentID),
		errors.Is(err, usecase.ErrInvalidPhase):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrVehicleNotFound):
		return pkg.NewDomainErrorSimple("VEHICLE_NOT_FOUND", "Referenced vehicle not found", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceOrderNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAttachmentNotFound):
		return pkg.NewDomainErrorSimple("ATTACHMENT_NOT_FOUND", "Attachment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPhaseTransition):
		return pkg.NewDomainErrorSimple("INVALID_PHASE_TRANSITION", "Phase transition not allowed", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceOrderClosed):
		return pkg.NewDomainErrorSimple("SERVICE_ORDER_CLOSED", "Service order is closed", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingTechnicalConclusion):
		return pkg.NewDomainErrorSimple("MISSING_TECHNICAL_CONCLUSION", "Technical conclusion is required to complete a service order", http.StatusConflict)
	case errors.Is(err, usecase.ErrWriteConflict):
		return pkg.NewDomainErrorSimple("WRITE_CONFLICT", "Concurrent update conflict, retry the request", http.StatusConflict)
	default:
		if appErr, ok := storeUnavailableError(err); ok {
			return appErr
		}
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
