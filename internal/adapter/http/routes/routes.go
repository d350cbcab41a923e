package routes

import (
	"context"
	"log"
	_ "manutencao_xpto/docs" // This will be auto-generated
	"manutencao_xpto/internal/adapter/http/handlers"
	repository2 "manutencao_xpto/internal/adapter/persistence/repository"
	"manutencao_xpto/internal/infrastructure/database"
	"manutencao_xpto/internal/infrastructure/storage"
	"manutencao_xpto/internal/usecase"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	blobStore := storage.NewS3BlobStore(awsCfg)

	orderRepo := repository2.NewServiceOrderDynamoRepository(ddb)
	requisitionRepo := repository2.NewPartsRequisitionDynamoRepository(ddb)
	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	vehicleRepo := repository2.NewVehicleDynamoRepository(ddb)

	orderUseCase := usecase.NewServiceOrderUseCase(orderRepo, vehicleRepo, blobStore)
	requisitionUseCase := usecase.NewPartsRequisitionUseCase(requisitionRepo, orderRepo, blobStore)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, orderUseCase)
	vehicleUseCase := usecase.NewVehicleUseCase(vehicleRepo)

	orderHandler := handlers.NewServiceOrderHandler(orderUseCase)
	requisitionHandler := handlers.NewPartsRequisitionHandler(requisitionUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	vehicleHandler := handlers.NewVehicleHandler(vehicleUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFleetRoutes(v1, orderHandler, requisitionHandler, budgetHandler, vehicleHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
