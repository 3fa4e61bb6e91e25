// Файл: internal/routes/report.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runReportRouter(secure *echo.Group, reportCtrl *controllers.ReportController) {
	secure.GET("/reports/requests", reportCtrl.GetRequestsReport)
}
