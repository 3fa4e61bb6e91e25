// Файл: internal/routes/equipment.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runEquipmentRouter(secure *echo.Group, equipmentCtrl *controllers.EquipmentController) {
	secure.GET("/equipment", equipmentCtrl.GetEquipments)
	secure.GET("/equipment/:id", equipmentCtrl.FindEquipment)
	secure.GET("/equipment/:id/requests", equipmentCtrl.GetEquipmentRequests)
	secure.POST("/equipment", equipmentCtrl.CreateEquipment)
	secure.PUT("/equipment/:id", equipmentCtrl.UpdateEquipment)
	secure.DELETE("/equipment/:id", equipmentCtrl.DeleteEquipment)
}
