package workqueue

import (
	"time"

	"github.com/gocraft/work"
	"github.com/gomodule/redigo/redis"
)

// JobFollowUp delivers the delayed follow-up message of a lead submission.
const JobFollowUp = "follow_up"

// ArgChatID job argument
const ArgChatID = "chat_id"

// NewPool creates the redis connection pool backing the work queue.
func NewPool(redisURL string, password string) *redis.Pool {
	return &redis.Pool{
		MaxActive: 5,
		MaxIdle:   5,
		Wait:      true,
		Dial: func() (redis.Conn, error) {
			return redis.DialURL(redisURL, redis.DialPassword(password))
		},
	}
}

// Scheduler enqueues delayed jobs. Delay granularity is one second, the
// finest the queue supports.
type Scheduler struct {
	enqueuer *work.Enqueuer
}

// NewScheduler for the given queue namespace
func NewScheduler(namespace string, pool *redis.Pool) *Scheduler {
	return &Scheduler{enqueuer: work.NewEnqueuer(namespace, pool)}
}

// ScheduleFollowUp enqueues a follow-up send for chatID to run after delay.
func (s *Scheduler) ScheduleFollowUp(chatID int64, delay time.Duration) error {
	_, err := s.enqueuer.EnqueueIn(JobFollowUp, int64(delay/time.Second), work.Q{
		ArgChatID: chatID,
	})
	return err
}
