package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

const queueKey = "salon:reminders"

// Reminder is the payload delivered before an appointment starts.
type Reminder struct {
	AppointmentID uint   `json:"appointment_id"`
	ClientName    string `json:"client_name"`
	ServiceName   string `json:"service_name"`
	Date          string `json:"date"`
	Time          string `json:"time"`
}

// Scheduler queues reminders in a Redis sorted set scored by fire time.
// Everything here is fire and forget: a reminder that cannot be queued
// is logged and dropped, it never fails the booking that produced it.
type Scheduler struct {
	rdb *redis.Client
}

func NewScheduler(rdb *redis.Client) *Scheduler {
	return &Scheduler{rdb: rdb}
}

// Schedule enqueues r to fire leadMinutes before startAt. Reminders
// whose fire time is already in the past are silently skipped, same as
// the original local-notification behavior.
func (s *Scheduler) Schedule(ctx context.Context, r Reminder, startAt time.Time, leadMinutes int) {
	if s == nil || s.rdb == nil {
		return
	}

	fireAt := startAt.Add(-time.Duration(leadMinutes) * time.Minute)
	if fireAt.Before(time.Now()) {
		return
	}

	payload, err := json.Marshal(r)
	if err != nil {
		log.Println("reminder marshal error:", err)
		return
	}

	if err := s.rdb.ZAdd(ctx, queueKey, &redis.Z{
		Score:  float64(fireAt.Unix()),
		Member: payload,
	}).Err(); err != nil {
		log.Println("reminder schedule error:", err)
	}
}
