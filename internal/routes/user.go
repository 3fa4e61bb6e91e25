// Файл: internal/routes/user.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runUserRouter(secure *echo.Group, userCtrl *controllers.UserController) {
	secure.GET("/users", userCtrl.GetUsers)
}
