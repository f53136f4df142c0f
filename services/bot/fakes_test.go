package bot

import (
	"errors"
	"fmt"
	"time"

	"github.com/HBKLXNDR/telegram-consultant/models"
)

type sentMessage struct {
	chatID   int64
	markdown bool
	text     string
	markup   interface{}
}

type scheduledFollowUp struct {
	chatID int64
	delay  time.Duration
}

// fakeMessenger records every issued call. Sends to chats listed in sendErr
// fail but are still recorded, mirroring a send that was issued and rejected.
type fakeMessenger struct {
	sent      []sentMessage
	callbacks []string
	articles  []models.WebAppArticle
	answered  map[string]bool

	sendErr     map[int64]error
	callbackErr error
	queryErr    error

	// optional shared issuance log, for asserting cross-fake ordering
	ops *[]string
}

func (m *fakeMessenger) record(op string) {
	if m.ops != nil {
		*m.ops = append(*m.ops, op)
	}
}

func (m *fakeMessenger) SendMessage(chatID int64, markdown bool, text string) error {
	m.sent = append(m.sent, sentMessage{chatID, markdown, text, nil})
	m.record(fmt.Sprintf("send:%d", chatID))
	return m.sendErr[chatID]
}

func (m *fakeMessenger) SendKeyboardMessage(chatID int64, markdown bool, text string, markup interface{}) error {
	m.sent = append(m.sent, sentMessage{chatID, markdown, text, markup})
	m.record(fmt.Sprintf("send:%d", chatID))
	return m.sendErr[chatID]
}

func (m *fakeMessenger) AnswerCallback(callbackID string) error {
	m.callbacks = append(m.callbacks, callbackID)
	return m.callbackErr
}

func (m *fakeMessenger) AnswerWebAppQuery(queryID string, article models.WebAppArticle) error {
	if m.queryErr != nil {
		return m.queryErr
	}
	if m.answered[queryID] {
		return errors.New("Bad Request: query is already answered")
	}
	if m.answered == nil {
		m.answered = map[string]bool{}
	}
	m.answered[queryID] = true
	m.articles = append(m.articles, article)
	return nil
}

type fakeScheduler struct {
	scheduled []scheduledFollowUp
	err       error
	ops       *[]string
}

func (s *fakeScheduler) ScheduleFollowUp(chatID int64, delay time.Duration) error {
	s.scheduled = append(s.scheduled, scheduledFollowUp{chatID, delay})
	if s.ops != nil {
		*s.ops = append(*s.ops, fmt.Sprintf("schedule:%d", chatID))
	}
	return s.err
}

func testConfig() Config {
	return Config{
		WebAppURL:     "https://app.example.com",
		HomepageURL:   "https://example.com",
		StaffChatID:   99,
		StaffUsername: "@manager",
	}
}
