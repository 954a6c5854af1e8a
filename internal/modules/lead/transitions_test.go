package lead

import (
	"testing"
	"time"

	"leadcrm/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildStatusUpdate_RejectsUnknownStatus(t *testing.T) {
	_, err := BuildStatusUpdate(&domain.Lead{Status: domain.LeadNew}, ChangeStatusRequest{Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestBuildStatusUpdate_SentRequiresDate(t *testing.T) {
	current := &domain.Lead{Status: domain.LeadEmailed}

	_, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "sent"})
	assert.ErrorIs(t, err, ErrEmailDateRequired)

	sent := time.Now()
	update, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "sent", EmailSentDate: &sent})
	assert.NoError(t, err)
	assert.NotNil(t, update.EmailSentDate)
}

func TestBuildStatusUpdate_SentKeepsExistingDate(t *testing.T) {
	sent := time.Now().Add(-24 * time.Hour)
	current := &domain.Lead{Status: domain.LeadPending, EmailSentDate: &sent}

	update, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "sent"})
	assert.NoError(t, err)
	assert.Nil(t, update.EmailSentDate)
}

func TestBuildStatusUpdate_LostReasonHandling(t *testing.T) {
	current := &domain.Lead{Status: domain.LeadContacted}

	update, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "lost"})
	assert.NoError(t, err)
	assert.Equal(t, domain.LossReasonUnspecified, *update.LossReason)

	update, err = BuildStatusUpdate(current, ChangeStatusRequest{Status: "lost", LossReason: "Bütçe Yetersiz"})
	assert.NoError(t, err)
	assert.Equal(t, "Bütçe Yetersiz", *update.LossReason)

	_, err = BuildStatusUpdate(current, ChangeStatusRequest{Status: "lost", LossReason: "uzaylılar"})
	assert.ErrorIs(t, err, ErrInvalidLossReason)
}

func TestBuildStatusUpdate_LeavingLostClearsReason(t *testing.T) {
	current := &domain.Lead{Status: domain.LeadLost, LossReason: "Rakibi Seçti"}

	update, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "contacted"})
	assert.NoError(t, err)
	assert.NotNil(t, update.LossReason)
	assert.Equal(t, "", *update.LossReason)
}

func TestBuildStatusUpdate_LeavingSentKeepsEmailDate(t *testing.T) {
	sent := time.Now()
	current := &domain.Lead{Status: domain.LeadSent, EmailSentDate: &sent}

	update, err := BuildStatusUpdate(current, ChangeStatusRequest{Status: "won"})
	assert.NoError(t, err)
	assert.Nil(t, update.EmailSentDate)

	next := *current
	applyUpdate(&next, update)
	assert.NotNil(t, next.EmailSentDate)
}
