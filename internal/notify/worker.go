package notify

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const pollInterval = 30 * time.Second

// Worker drains due reminders from the queue. Delivery here is the
// server-side stand-in for the app's local notifications: the event is
// logged and removed. It runs until ctx is cancelled.
type Worker struct {
	rdb *redis.Client
}

func NewWorker(rdb *redis.Client) *Worker {
	return &Worker{rdb: rdb}
}

func (w *Worker) Run(ctx context.Context) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.deliverDue(ctx)
		}
	}
}

func (w *Worker) deliverDue(ctx context.Context) {
	now := strconv.FormatInt(time.Now().Unix(), 10)

	members, err := w.rdb.ZRangeByScore(ctx, queueKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: now,
	}).Result()
	if err != nil {
		log.Println("reminder poll error:", err)
		return
	}

	for _, m := range members {
		var r Reminder
		if err := json.Unmarshal([]byte(m), &r); err == nil {
			log.Printf(
				"lembrete: %s às %s, %s (%s)",
				r.Date, r.Time, r.ClientName, r.ServiceName,
			)
		}
		if err := w.rdb.ZRem(ctx, queueKey, m).Err(); err != nil {
			log.Println("reminder remove error:", err)
		}
	}
}
