// Файл: internal/routes/dashboard.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runDashboardRouter(secure *echo.Group, dashboardCtrl *controllers.DashboardController) {
	secure.GET("/dashboard/stats", dashboardCtrl.GetStats)
}
