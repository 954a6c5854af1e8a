package contract

import (
	"math"
	"time"

	"leadcrm/internal/domain"
)

const warningWindowDays = 30

// Lifecycle derives the one-year term state of a contract at the given
// moment. The end date is exactly one calendar year after the contract
// date, and partial days remaining round up.
func Lifecycle(c *domain.Contract, now time.Time) domain.ContractLifecycle {
	endDate := c.ContractDate.AddDate(1, 0, 0)

	remaining := int(math.Ceil(endDate.Sub(now).Hours() / 24))

	state := domain.ContractActive
	switch {
	case remaining <= 0:
		state = domain.ContractExpired
	case remaining <= warningWindowDays:
		state = domain.ContractWarning
	}

	total := endDate.Sub(c.ContractDate).Hours()
	elapsed := now.Sub(c.ContractDate).Hours()
	progress := 0.0
	if total > 0 {
		progress = elapsed / total * 100
	}
	progress = math.Max(0, math.Min(100, progress))

	return domain.ContractLifecycle{
		EndDate:         endDate,
		RemainingDays:   remaining,
		State:           state,
		ProgressPercent: progress,
	}
}
