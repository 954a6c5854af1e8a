package domain

import "time"

type ActivityType string

const (
	ActivityCreated      ActivityType = "created"
	ActivityStatusChange ActivityType = "status_change"
	ActivityNoteAdded    ActivityType = "note_added"
	ActivityEmailSent    ActivityType = "email_sent"
	ActivityCallMade     ActivityType = "call_made"
)

// LeadActivity is an append-only timeline entry. Entries are never
// updated or deleted individually; they only disappear together with
// their lead.
type LeadActivity struct {
	ID        string       `json:"id"`
	LeadID    string       `json:"lead_id"`
	Type      ActivityType `json:"type"`
	Details   string       `json:"details"`
	CreatedAt time.Time    `json:"created_at"`
}
