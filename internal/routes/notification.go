// Файл: internal/routes/notification.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runNotificationRouter(secure *echo.Group, notificationCtrl *controllers.NotificationController) {
	secure.GET("/notifications", notificationCtrl.GetMyNotifications)
	secure.PUT("/notifications/:id/read", notificationCtrl.MarkRead)
}
