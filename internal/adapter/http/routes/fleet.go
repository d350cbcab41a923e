package routes

import (
	"manutencao_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathRequisitions  = "/requisitions"
	PathBudgets       = "/budgets"
	PathVehicles      = "/vehicles"
)

func addFleetRoutes(
	rg *gin.RouterGroup,
	orderHandler *handlers.ServiceOrderHandler,
	requisitionHandler *handlers.PartsRequisitionHandler,
	budgetHandler *handlers.BudgetHandler,
	vehicleHandler *handlers.VehicleHandler,
) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateServiceOrder)
		orders.GET("", orderHandler.ListServiceOrders)
		orders.GET("/:id", orderHandler.GetServiceOrder)
		orders.PATCH("/:id", orderHandler.UpdateServiceOrder)
		orders.DELETE("/:id", orderHandler.DeleteServiceOrder)

		orders.PATCH("/:id/phase", orderHandler.TransitionPhase)
		orders.PATCH("/:id/complete", orderHandler.CompleteServiceOrder)
		orders.PATCH("/:id/cancel", orderHandler.CancelServiceOrder)

		orders.POST("/:id/attachments", orderHandler.AddAttachment)
		orders.DELETE("/:id/attachments", orderHandler.RemoveAttachment)
	}

	requisitions := rg.Group(PathRequisitions)
	{
		requisitions.POST("", requisitionHandler.CreateRequisition)
		requisitions.GET("", requisitionHandler.ListRequisitions)
		requisitions.GET("/:id", requisitionHandler.GetRequisition)

		requisitions.PATCH("/:id/items/:item_id/triage", requisitionHandler.TriageItem)
		requisitions.POST("/:id/items/:item_id/image", requisitionHandler.AttachItemImage)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", budgetHandler.CreateBudget)
		budgets.GET("", budgetHandler.ListBudgets)
		budgets.GET("/:id", budgetHandler.GetBudget)

		budgets.PATCH("/:id/approve", budgetHandler.ApproveBudget)
		budgets.PATCH("/:id/reject", budgetHandler.RejectBudget)
		budgets.POST("/:id/service-order", budgetHandler.PromoteBudget)
	}

	vehicles := rg.Group(PathVehicles)
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
		vehicles.PATCH("/:id", vehicleHandler.UpdateVehicle)
	}
}
