package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/shenikar/fire_incident_console/internal/models"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	api.Use(SessionMiddleware(h.sessions, h.logger))

	// Открытые маршруты аутентификации
	auth := api.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
		auth.POST("/forgot-password", h.forgotPassword)
		auth.POST("/reset-password", h.resetPassword)
	}

	// Открытый маршрут поступления отчетов от мобильного приложения
	api.POST("/reports/:category", h.submitReport)

	// Маршруты консоли станции за ролевым шлюзом
	station := api.Group("/station")
	station.Use(RequireRole(models.AccountTypeFireStation, h.logger))
	{
		station.GET("/reports", h.listReports)
		station.PUT("/reports/:category/:id/accept", h.acceptReport)
		station.PUT("/reports/:category/:id/assign", h.assignUnit)
		station.DELETE("/reports/:category/:id", h.removeReport)
		station.GET("/reports/:id/messages", h.listMessages)
		station.POST("/reports/:id/messages", h.sendMessage)
		station.GET("/dashboard", h.stationDashboard)
	}

	// Административные маршруты за ролевым шлюзом
	admin := api.Group("/admin")
	admin.Use(RequireRole(models.AccountTypeAdmin, h.logger))
	{
		admin.GET("/dashboard", h.adminDashboard)

		admin.POST("/stations", h.createStation)
		admin.GET("/stations", h.listStations)
		admin.GET("/stations/central", h.listCentralStations)
		admin.GET("/stations/:id/substations", h.listSubStations)
		admin.GET("/stations/:id/investigators", h.listInvestigators)
		admin.PUT("/stations/:id", h.updateStation)
		admin.DELETE("/stations/:id", h.deleteStation)

		admin.POST("/units", h.createUnit)
		admin.GET("/units", h.listUnits)
		admin.PUT("/units/:id", h.updateUnit)
		admin.DELETE("/units/:id", h.deleteUnit)

		admin.POST("/responders", h.createResponder)
		admin.GET("/responders", h.listResponders)
		admin.PUT("/responders/:id", h.updateResponder)
		admin.DELETE("/responders/:id", h.deleteResponder)

		admin.GET("/users", h.listUsers)
		admin.PUT("/users/:id", h.updateUser)
		admin.DELETE("/users/:id", h.deleteUser)

		admin.POST("/deployments", h.createDeployment)
		admin.GET("/deployments", h.listDeployments)
		admin.PUT("/deployments/:id", h.updateDeployment)
		admin.POST("/deployments/:id/units", h.assignDeploymentUnit)
		admin.GET("/deployments/:id/units", h.listDeploymentUnits)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
