package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

var testLead = models.Lead{Name: "Ivan", Email: "i@example.com", Number: "+380501112233"}

func TestLeadSubmittedIssuanceOrder(t *testing.T) {
	ops := []string{}
	messenger := &fakeMessenger{ops: &ops}
	scheduler := &fakeScheduler{ops: &ops}
	p := NewPipeline(zap.NewNop(), messenger, scheduler, testConfig())

	p.LeadSubmitted(5, testLead)

	// requester thank-you, staff alert, then the follow-up timer
	assert.Equal(t, []string{"send:5", "send:99", "schedule:5"}, ops)

	require.Len(t, scheduler.scheduled, 1)
	assert.Equal(t, 3*time.Second, scheduler.scheduled[0].delay)
	assert.GreaterOrEqual(t, scheduler.scheduled[0].delay, 3000*time.Millisecond)
}

func TestLeadSubmittedStaffNotificationContent(t *testing.T) {
	messenger := &fakeMessenger{}
	p := NewPipeline(zap.NewNop(), messenger, &fakeScheduler{}, testConfig())

	p.LeadSubmitted(5, testLead)

	require.Len(t, messenger.sent, 2)
	staffMsg := messenger.sent[1]
	assert.Equal(t, int64(99), staffMsg.chatID)
	assert.Contains(t, staffMsg.text, "Ivan")
	assert.Contains(t, staffMsg.text, "i@example.com")
	assert.Contains(t, staffMsg.text, "+380501112233")
}

// A lost staff notification must not stop the requester-facing steps.
func TestLeadSubmittedStaffFailureIsolated(t *testing.T) {
	ops := []string{}
	messenger := &fakeMessenger{
		ops:     &ops,
		sendErr: map[int64]error{99: errors.New("blocked by user")},
	}
	scheduler := &fakeScheduler{ops: &ops}
	p := NewPipeline(zap.NewNop(), messenger, scheduler, testConfig())

	p.LeadSubmitted(5, testLead)

	assert.Equal(t, []string{"send:5", "send:99", "schedule:5"}, ops)
}

func TestLeadSubmittedRequesterFailureIsolated(t *testing.T) {
	messenger := &fakeMessenger{sendErr: map[int64]error{5: errors.New("chat not found")}}
	scheduler := &fakeScheduler{}
	p := NewPipeline(zap.NewNop(), messenger, scheduler, testConfig())

	p.LeadSubmitted(5, testLead)

	require.Len(t, messenger.sent, 2)
	assert.Equal(t, int64(99), messenger.sent[1].chatID)
	assert.Len(t, scheduler.scheduled, 1)
}

func TestLeadSubmittedSchedulerFailureOnlyLogged(t *testing.T) {
	messenger := &fakeMessenger{}
	scheduler := &fakeScheduler{err: errors.New("redis down")}
	p := NewPipeline(zap.NewNop(), messenger, scheduler, testConfig())

	// must not panic or surface anything
	p.LeadSubmitted(5, testLead)

	assert.Len(t, messenger.sent, 2)
}

func TestSendFollowUpContent(t *testing.T) {
	messenger := &fakeMessenger{}
	p := NewPipeline(zap.NewNop(), messenger, &fakeScheduler{}, testConfig())

	require.NoError(t, p.SendFollowUp(5))

	require.Len(t, messenger.sent, 1)
	assert.Equal(t, int64(5), messenger.sent[0].chatID)
	assert.Contains(t, messenger.sent[0].text, "@manager")
	assert.Contains(t, messenger.sent[0].text, "https://example.com")
}
