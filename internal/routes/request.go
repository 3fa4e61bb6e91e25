// Файл: internal/routes/request.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runRequestRouter(secure *echo.Group, requestCtrl *controllers.RequestController) {
	secure.GET("/requests", requestCtrl.GetRequests)
	secure.GET("/requests/:id", requestCtrl.FindRequest)
	secure.POST("/requests", requestCtrl.CreateRequest)
	secure.PUT("/requests/:id", requestCtrl.UpdateRequest)
	secure.DELETE("/requests/:id", requestCtrl.DeleteRequest)
}
