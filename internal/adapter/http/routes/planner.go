package routes

import (
	"moveplanner/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkspaces  = "/workspaces"
	PathCompanies   = "/companies"
	PathFeeRules    = "/fee-rules"
	PathMembers     = "/members"
	PathInvitations = "/invitations"
	PathBudgets     = "/budgets"
	PathDeposits    = "/savings/deposits"
	PathItems       = "/items"
	PathCategories  = "/categories"
	PathRooms       = "/rooms"
	PathTasks       = "/tasks"
)

func addWorkspaceRoutes(rg *gin.RouterGroup, h *handlers.WorkspaceHandler) {
	workspaces := rg.Group(PathWorkspaces)
	{
		workspaces.POST("", h.CreateWorkspace)
		workspaces.GET("/:workspace_id", h.GetWorkspace)
		workspaces.PATCH("/:workspace_id", h.UpdateWorkspace)
		workspaces.GET("/:workspace_id/days-until-move", h.DaysUntilMove)
		workspaces.GET("/:workspace_id/members", h.ListMembers)
		workspaces.POST("/:workspace_id/invitations", h.Invite)
		workspaces.GET("/:workspace_id/invitations", h.ListPendingInvitations)
		workspaces.GET("/:workspace_id/activity", h.Activity)
	}

	rg.DELETE(PathMembers+"/:member_id", h.RemoveMember)
	rg.DELETE(PathInvitations+"/:invitation_id", h.CancelInvitation)
}

func addCompanyRoutes(rg *gin.RouterGroup, companyHandler *handlers.CompanyHandler, ruleHandler *handlers.FeeRuleHandler) {
	rg.POST(PathWorkspaces+"/:workspace_id/companies", companyHandler.CreateCompany)
	rg.GET(PathWorkspaces+"/:workspace_id/companies", companyHandler.ListCompanies)

	companies := rg.Group(PathCompanies)
	{
		companies.GET("/:company_id", companyHandler.GetCompany)
		companies.PATCH("/:company_id", companyHandler.UpdateCompany)
		companies.DELETE("/:company_id", companyHandler.DeleteCompany)
		companies.GET("/:company_id/quote", companyHandler.Quote)
		companies.POST("/:company_id/fee-rules", ruleHandler.CreateRule)
		companies.GET("/:company_id/fee-rules", ruleHandler.ListRules)
	}

	rg.DELETE(PathFeeRules+"/:rule_id", ruleHandler.DeleteRule)
}

func addBudgetRoutes(rg *gin.RouterGroup, h *handlers.BudgetHandler) {
	workspaces := rg.Group(PathWorkspaces + "/:workspace_id")
	{
		workspaces.POST("/budgets/init", h.InitBudgets)
		workspaces.GET("/budgets", h.ListBudgets)
		workspaces.GET("/budgets/summary", h.Summary)
		workspaces.POST(PathDeposits, h.CreateDeposit)
		workspaces.GET(PathDeposits, h.ListDeposits)
		workspaces.GET("/savings/goals", h.SavingsGoals)
	}

	rg.PATCH(PathBudgets+"/:budget_id", h.UpdateBudget)
	rg.PATCH(PathDeposits+"/:deposit_id", h.UpdateDeposit)
	rg.DELETE(PathDeposits+"/:deposit_id", h.DeleteDeposit)
}

func addShoppingRoutes(rg *gin.RouterGroup, h *handlers.ShoppingHandler) {
	workspaces := rg.Group(PathWorkspaces + "/:workspace_id")
	{
		workspaces.POST(PathItems, h.CreateItem)
		workspaces.GET(PathItems, h.ListItems)
		workspaces.POST(PathCategories, h.CreateCategory)
		workspaces.GET(PathCategories, h.ListCategories)
		workspaces.POST(PathRooms, h.CreateRoom)
		workspaces.GET(PathRooms, h.ListRooms)
	}

	items := rg.Group(PathItems)
	{
		items.GET("/:item_id", h.GetItem)
		items.PATCH("/:item_id", h.UpdateItem)
		items.DELETE("/:item_id", h.DeleteItem)
		items.POST("/:item_id/purchase", h.Purchase)
		items.GET("/:item_id/prices", h.ListPrices)
		items.POST("/:item_id/prices", h.AddPrice)
	}

	rg.PATCH(PathCategories+"/:category_id", h.UpdateCategory)
	rg.DELETE(PathCategories+"/:category_id", h.DeleteCategory)
	rg.PATCH(PathRooms+"/:room_id", h.UpdateRoom)
	rg.DELETE(PathRooms+"/:room_id", h.DeleteRoom)
}

func addTaskRoutes(rg *gin.RouterGroup, h *handlers.TaskHandler) {
	rg.POST(PathWorkspaces+"/:workspace_id/tasks", h.CreateTask)
	rg.GET(PathWorkspaces+"/:workspace_id/tasks", h.ListTasks)

	tasks := rg.Group(PathTasks)
	{
		tasks.GET("/:task_id", h.GetTask)
		tasks.PATCH("/:task_id", h.UpdateTask)
		tasks.POST("/:task_id/done", h.SetDone)
		tasks.DELETE("/:task_id", h.DeleteTask)
	}
}
