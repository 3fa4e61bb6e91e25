package dto

type DashboardStatsDTO struct {
	TotalEquipment     uint64 `json:"total_equipment"`
	TotalTeams         uint64 `json:"total_teams"`
	TotalRequests      uint64 `json:"total_requests"`
	NewRequests        uint64 `json:"new_requests"`
	InProgressRequests uint64 `json:"in_progress_requests"`
	RepairedRequests   uint64 `json:"repaired_requests"`
	CorrectiveRequests uint64 `json:"corrective_requests"`
	PreventiveRequests uint64 `json:"preventive_requests"`
}
