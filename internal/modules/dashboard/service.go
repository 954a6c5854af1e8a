package dashboard

import (
	"context"
	"sort"

	"leadcrm/internal/domain"
)

const (
	topSectorsLimit    = 5
	recentEmailedLimit = 5
	openTasksLimit     = 6
)

type Service struct {
	leads     LeadReader
	tasks     TaskReader
	contracts ContractReader
}

func NewService(leads LeadReader, tasks TaskReader, contracts ContractReader) *Service {
	return &Service{
		leads:     leads,
		tasks:     tasks,
		contracts: contracts,
	}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	leads, err := s.leads.List(ctx)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListOpen(ctx, openTasksLimit)
	if err != nil {
		return nil, err
	}

	contracts, err := s.contracts.List(ctx, "")
	if err != nil {
		return nil, err
	}

	summary := Aggregate(leads)
	summary.OpenTasks = tasks
	summary.ContractsCount = len(contracts)
	return summary, nil
}

// Aggregate computes every lead-derived panel of the summary from a
// single pass over the lead list. Taking a plain slice keeps the
// counting rules testable without storage.
func Aggregate(leads []domain.Lead) *Summary {
	statusCounts := make(map[string]int)
	sectorCounts := make(map[string]int)
	lossReasons := make(map[string]int)
	var emailed []domain.Lead

	for _, l := range leads {
		statusCounts[string(l.Status)]++
		for _, sector := range l.Sectors {
			sectorCounts[sector]++
		}
		if l.IsLost() {
			reason := l.LossReason
			if reason == "" {
				reason = domain.LossReasonUnspecified
			}
			lossReasons[reason]++
		}
		if l.Status == domain.LeadEmailed {
			emailed = append(emailed, l)
		}
	}

	sort.SliceStable(emailed, func(i, j int) bool {
		return emailed[i].LastContactDate.After(emailed[j].LastContactDate)
	})
	if len(emailed) > recentEmailedLimit {
		emailed = emailed[:recentEmailedLimit]
	}

	return &Summary{
		TotalLeads:    len(leads),
		StatusCounts:  statusCounts,
		TopSectors:    topSectors(sectorCounts, topSectorsLimit),
		LossReasons:   lossReasonCounts(lossReasons),
		RecentEmailed: emailed,
		OpenTasks:     []domain.Task{},
	}
}

// topSectors ranks sectors by count, breaking ties alphabetically so
// the ordering is stable between calls.
func topSectors(counts map[string]int, limit int) []SectorCount {
	out := make([]SectorCount, 0, len(counts))
	for sector, count := range counts {
		out = append(out, SectorCount{Sector: sector, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Sector < out[j].Sector
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// lossReasonCounts ranks loss reasons by count, breaking ties
// alphabetically so the ordering is stable between calls.
func lossReasonCounts(counts map[string]int) []ReasonCount {
	out := make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		out = append(out, ReasonCount{Reason: reason, Count: count})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Reason < out[j].Reason
	})

	return out
}
