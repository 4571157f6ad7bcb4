package routes

import (
	"log"
	_ "moveplanner/docs" // This will be auto-generated
	"moveplanner/internal/adapter/http/handlers"
	repository2 "moveplanner/internal/adapter/persistence/repository"
	"moveplanner/internal/infrastructure/database"
	"moveplanner/internal/usecase"
	"strconv"

	"github.com/gin-contrib/cors"
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

	workspaceRepo := repository2.NewWorkspaceDynamoRepository(ddb)
	memberRepo := repository2.NewMemberDynamoRepository(ddb)
	invitationRepo := repository2.NewInvitationDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	roomRepo := repository2.NewRoomDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)
	ruleRepo := repository2.NewFeeRuleDynamoRepository(ddb)
	itemRepo := repository2.NewItemDynamoRepository(ddb)
	priceRepo := repository2.NewItemPriceDynamoRepository(ddb)
	budgetRepo := repository2.NewRoomBudgetDynamoRepository(ddb)
	depositRepo := repository2.NewSavingsDepositDynamoRepository(ddb)
	taskRepo := repository2.NewTaskDynamoRepository(ddb)
	activityRepo := repository2.NewActivityLogDynamoRepository(ddb)

	workspaceUseCase := usecase.NewWorkspaceUseCase(workspaceRepo, memberRepo, invitationRepo, categoryRepo, roomRepo, budgetRepo, activityRepo)
	companyUseCase := usecase.NewCompanyUseCase(companyRepo, ruleRepo, workspaceRepo, activityRepo)
	feeRuleUseCase := usecase.NewFeeRuleUseCase(companyRepo, ruleRepo, activityRepo)
	shoppingUseCase := usecase.NewShoppingUseCase(itemRepo, priceRepo, categoryRepo, roomRepo, activityRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, depositRepo, roomRepo, itemRepo, priceRepo, activityRepo)
	taskUseCase := usecase.NewTaskUseCase(taskRepo, categoryRepo, activityRepo)

	workspaceHandler := handlers.NewWorkspaceHandler(workspaceUseCase)
	companyHandler := handlers.NewCompanyHandler(companyUseCase)
	feeRuleHandler := handlers.NewFeeRuleHandler(feeRuleUseCase)
	shoppingHandler := handlers.NewShoppingHandler(shoppingUseCase)
	budgetHandler := handlers.NewBudgetHandler(budgetUseCase)
	taskHandler := handlers.NewTaskHandler(taskUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkspaceRoutes(v1, workspaceHandler)
	addCompanyRoutes(v1, companyHandler, feeRuleHandler)
	addBudgetRoutes(v1, budgetHandler)
	addShoppingRoutes(v1, shoppingHandler)
	addTaskRoutes(v1, taskHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
