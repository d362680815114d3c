package notify

import (
	"sync"
	"time"
)

// Recorder is a Notifier that keeps everything, for tests.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
}

func (r *Recorder) Success(title, description string) {
	r.record(KindDefault, title, description)
}

func (r *Recorder) Error(title, description string) {
	r.record(KindDestructive, title, description)
}

func (r *Recorder) record(kind, title, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, Notification{
		Kind:        kind,
		Title:       title,
		Description: description,
		CreatedAt:   time.Now(),
	})
}

func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Errors returns only the destructive notifications.
func (r *Recorder) Errors() []Notification {
	var out []Notification
	for _, n := range r.All() {
		if n.Kind == KindDestructive {
			out = append(out, n)
		}
	}
	return out
}

// Successes returns only the default-styled notifications.
func (r *Recorder) Successes() []Notification {
	var out []Notification
	for _, n := range r.All() {
		if n.Kind == KindDefault {
			out = append(out, n)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = nil
}
