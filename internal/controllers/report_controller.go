// Файл: internal/controllers/report_controller.go
package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"maintenance-system/internal/entities"
	"maintenance-system/internal/services"
	"maintenance-system/pkg/utils"
)

type ReportController struct {
	requestService services.RequestServiceInterface
	logger         *zap.Logger
}

func NewReportController(requestService services.RequestServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{requestService: requestService, logger: logger}
}

var requestReportHeaders = []string{
	"Тема", "Оборудование", "Категория", "Бригада", "Тип", "Стадия",
	"Исполнитель", "Плановая дата", "Длительность (ч)", "Создана", "Обновлена",
}

func requestToRow(req entities.MaintenanceRequest) []interface{} {
	dateFmt := "02.01.2006 15:04"
	var duration string
	if req.Duration.Valid {
		duration = fmt.Sprintf("%.2f", req.Duration.Float64)
	}
	return []interface{}{
		req.Subject, req.EquipmentName.String, req.EquipmentCategory.String, req.TeamName.String,
		req.RequestType, req.Stage, req.AssignedTo.String, req.ScheduledDate.String,
		duration, req.CreatedAt.Format(dateFmt), req.UpdatedAt.Format(dateFmt),
	}
}

// GetRequestsReport выгружает реестр заявок в XLSX.
func (c *ReportController) GetRequestsReport(ctx echo.Context) error {
	requests, err := c.requestService.GetRequests(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err)
	}

	f := excelize.NewFile()
	sheet := "Заявки"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &requestReportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "K1", style)

	for i, req := range requests {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := requestToRow(req)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "A", "B", 30)
	f.SetColWidth(sheet, "C", "G", 20)
	f.SetColWidth(sheet, "J", "K", 18)

	fileName := fmt.Sprintf("requests_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
