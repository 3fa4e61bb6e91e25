package constants

// Стадии заявки на обслуживание
const (
	StageNew        = "new"
	StageInProgress = "in_progress"
	StageRepaired   = "repaired"
	StageScrap      = "scrap"
)

// Статусы оборудования
const (
	EquipmentStatusActive      = "active"
	EquipmentStatusMaintenance = "maintenance"
	EquipmentStatusScrapped    = "scrapped"
)

// Типы заявок
const (
	RequestTypeCorrective = "corrective"
	RequestTypePreventive = "preventive"
)

// EquipmentStatusForStage - односторонняя связь "стадия заявки -> статус оборудования".
// Для остальных стадий (включая "new") статус оборудования не меняется.
func EquipmentStatusForStage(stage string) (string, bool) {
	switch stage {
	case StageInProgress:
		return EquipmentStatusMaintenance, true
	case StageRepaired:
		return EquipmentStatusActive, true
	case StageScrap:
		return EquipmentStatusScrapped, true
	}
	return "", false
}
