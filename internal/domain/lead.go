package domain

import "time"

type LeadStatus string

const (
	LeadNew       LeadStatus = "new"
	LeadContacted LeadStatus = "contacted"
	LeadEmailed   LeadStatus = "emailed"
	LeadPending   LeadStatus = "pending"
	LeadSent      LeadStatus = "sent"
	LeadWon       LeadStatus = "won"
	LeadLost      LeadStatus = "lost"
)

// leadStatusLabels holds the display labels shown in the UI and in
// activity messages ("Aşama değişti: ...").
var leadStatusLabels = map[LeadStatus]string{
	LeadNew:       "Yeni",
	LeadContacted: "İletişimde",
	LeadEmailed:   "E-posta Gönderilecek",
	LeadPending:   "Beklemede",
	LeadSent:      "E-posta Gönderildi",
	LeadWon:       "Kazanıldı",
	LeadLost:      "Kaybedildi",
}

func (s LeadStatus) Valid() bool {
	_, ok := leadStatusLabels[s]
	return ok
}

// Label returns the localized display label, falling back to the raw
// status value for unknown entries.
func (s LeadStatus) Label() string {
	if label, ok := leadStatusLabels[s]; ok {
		return label
	}
	return string(s)
}

type ContactDirection string

const (
	DirectionInbound  ContactDirection = "inbound"
	DirectionOutbound ContactDirection = "outbound"
)

// LossReasonUnspecified is recorded when a lead is marked lost without
// an explicit reason.
const LossReasonUnspecified = "Belirtilmedi"

// LossReasons is the fixed list offered when a lead transitions to lost.
var LossReasons = []string{
	"Bütçe Yetersiz",
	"Rakibi Seçti",
	"İletişim Koptu / Dönüş Yok",
	"Zamanlama Uygun Değil",
	"İhtiyaç Kalmadı",
	"Diğer",
}

// Sectors is the fixed roster a lead can be tagged with.
var Sectors = []string{
	"E-commerce",
	"Software",
	"Healthcare",
	"Finance",
	"Real Estate",
	"Education",
	"Manufacturing",
	"Retail",
	"Automotive",
	"Other",
}

type Lead struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email" validate:"required,email"`
	Phone            string           `json:"phone,omitempty"`
	CompanyName      string           `json:"company_name,omitempty"`
	Sectors          []string         `json:"sectors"`
	Status           LeadStatus       `json:"status"`
	ContactDirection ContactDirection `json:"contact_direction"`
	Notes            string           `json:"notes,omitempty"`
	LossReason       string           `json:"loss_reason,omitempty"`
	LastContactDate  time.Time        `json:"last_contact_date"`
	EmailSentDate    *time.Time       `json:"email_sent_date,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// DisplayName mirrors the UI rule: company name wins over the contact
// person's full name.
func (l *Lead) DisplayName() string {
	if l.CompanyName != "" {
		return l.CompanyName
	}
	return l.FirstName + " " + l.LastName
}

func (l *Lead) IsLost() bool {
	return l.Status == LeadLost
}
