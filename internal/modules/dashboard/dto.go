package dashboard

import "leadcrm/internal/domain"

type SectorCount struct {
	Sector string `json:"sector"`
	Count  int    `json:"count"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

type Summary struct {
	TotalLeads     int            `json:"total_leads"`
	StatusCounts   map[string]int `json:"status_counts"`
	TopSectors     []SectorCount  `json:"top_sectors"`
	LossReasons    []ReasonCount  `json:"loss_reasons"`
	RecentEmailed  []domain.Lead  `json:"recent_emailed"`
	OpenTasks      []domain.Task  `json:"open_tasks"`
	ContractsCount int            `json:"contracts_count"`
}
