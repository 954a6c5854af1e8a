package lead

import "leadcrm/internal/domain"

// BuildStatusUpdate resolves a requested status transition against the
// current lead into a partial update. It never touches storage, which
// keeps every transition rule checkable in isolation.
//
// Rules:
//   - the requested status must be one of the known pipeline stages
//   - moving to "sent" requires an email sent date
//   - moving to "lost" records a loss reason, defaulting to
//     domain.LossReasonUnspecified when none is given
//   - moving out of "lost" clears the loss reason
//   - an already recorded email sent date survives leaving "sent"
func BuildStatusUpdate(current *domain.Lead, req ChangeStatusRequest) (LeadUpdate, error) {
	status := domain.LeadStatus(req.Status)
	if !status.Valid() {
		return LeadUpdate{}, ErrInvalidStatus
	}

	update := LeadUpdate{Status: &status}

	switch status {
	case domain.LeadSent:
		if req.EmailSentDate == nil && current.EmailSentDate == nil {
			return LeadUpdate{}, ErrEmailDateRequired
		}
		if req.EmailSentDate != nil {
			update.EmailSentDate = req.EmailSentDate
		}

	case domain.LeadLost:
		reason := req.LossReason
		if reason == "" {
			reason = domain.LossReasonUnspecified
		}
		if !validLossReason(reason) {
			return LeadUpdate{}, ErrInvalidLossReason
		}
		update.LossReason = &reason
	}

	if status != domain.LeadLost && current.LossReason != "" {
		empty := ""
		update.LossReason = &empty
	}

	return update, nil
}

func validLossReason(reason string) bool {
	if reason == domain.LossReasonUnspecified {
		return true
	}
	for _, r := range domain.LossReasons {
		if r == reason {
			return true
		}
	}
	return false
}
