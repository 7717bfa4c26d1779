// this file deals with the ephemeral notification queue
package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	notificationCap = 5
	notificationTTL = 5 * time.Second
)

// NotificationQueue holds the 5 most recent ephemeral messages. A single
// sweep ticker expires entries 5 seconds after their own insertion; there
// is deliberately no timer per entry.
type NotificationQueue struct {
	mu      sync.Mutex
	entries []Notification
	ticker  *time.Ticker
	done    chan struct{}
	now     func() time.Time
}

func NewNotificationQueue() *NotificationQueue {
	return &NotificationQueue{
		entries: make([]Notification, 0),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

func (q *NotificationQueue) Start() {
	q.ticker = time.NewTicker(time.Second)
	go func() {
		for {
			select {
			case t := <-q.ticker.C:
				q.sweep(t)
			case <-q.done:
				return
			}
		}
	}()
}

func (q *NotificationQueue) Push(text string) {
	n := Notification{
		ID:        uuid.New().String(),
		Text:      text,
		CreatedAt: q.now(),
	}

	q.mu.Lock()
	q.entries = append([]Notification{n}, q.entries...)
	if len(q.entries) > notificationCap {
		q.entries = q.entries[:notificationCap]
	}
	q.mu.Unlock()
}

func (q *NotificationQueue) Entries() []Notification {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notification, len(q.entries))
	copy(out, q.entries)
	return out
}

// sweep drops every entry older than the TTL. Entries are newest first,
// so expired ones are a suffix of the slice.
func (q *NotificationQueue) sweep(t time.Time) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := len(q.entries) - 1; i >= 0; i-- {
		if t.Sub(q.entries[i].CreatedAt) < notificationTTL {
			q.entries = q.entries[:i+1]
			return
		}
	}
	q.entries = q.entries[:0]
}

func (q *NotificationQueue) Stop() {
	if q.ticker != nil {
		q.ticker.Stop()
	}
	close(q.done)
}
