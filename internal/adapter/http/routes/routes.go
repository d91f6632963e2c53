package routes

import (
	"log"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ZargesGmbH/dynamaker-qfs-elfsquad/docs" // This will be auto-generated
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/handlers"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/infrastructure/elfsquad"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/infrastructure/qfs"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase"
	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/usecase/interfaces"
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
	directory := elfsquad.NewClientFromEnv()

	var dispatcher interfaces.IRenderJobDispatcher
	qfsDispatcher, err := qfs.NewDispatcherFromEnv()
	if err != nil {
		log.Printf("QFS dispatcher not configured: %v", err)
	} else {
		dispatcher = qfsDispatcher
	}

	var auditLog interfaces.IAuditLogSink
	if sink := elfsquad.NewAuditLogSinkFromEnv(directory); sink != nil {
		auditLog = sink
	}

	triggerUseCase := usecase.NewTriggerRenderUseCase(directory, dispatcher, auditLog, os.Getenv("ELFSQUAD_CONFIGURATION_MODEL_ID"))
	callbackUseCase := usecase.NewCallbackUseCase(directory, auditLog)

	triggerHandler := handlers.NewTriggerHandler(triggerUseCase)
	callbackHandler := handlers.NewCallbackHandler(callbackUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addRenderRoutes(v1, triggerHandler, callbackHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
