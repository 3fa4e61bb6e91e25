// Файл: internal/routes/team.go
package routes

import (
	"github.com/labstack/echo/v4"

	"maintenance-system/internal/controllers"
)

func runTeamRouter(secure *echo.Group, teamCtrl *controllers.TeamController) {
	secure.GET("/teams", teamCtrl.GetTeams)
	secure.GET("/teams/:id", teamCtrl.FindTeam)
	secure.POST("/teams", teamCtrl.CreateTeam)
	secure.PUT("/teams/:id", teamCtrl.UpdateTeam)
	secure.DELETE("/teams/:id", teamCtrl.DeleteTeam)
}
