package services

import (
	"sync"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
)

// EventKind tells the presentation layer what happened.
type EventKind string

const (
	EventStateChanged    EventKind = "state_changed"
	EventProgress        EventKind = "progress"
	EventUploadSucceeded EventKind = "upload_succeeded"
	EventError           EventKind = "error"
	EventCopied          EventKind = "copied"
	EventCopyReverted    EventKind = "copy_reverted"
)

// Event is delivered to subscribers after every change. State is the
// snapshot taken right after the change.
type Event struct {
	Kind    EventKind
	Op      string
	State   models.WorkflowState
	Message string
}

// broker fans events out to subscribers in registration order.
type broker struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]func(Event)
	order  []int
}

func (b *broker) subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subs == nil {
		b.subs = make(map[int]func(Event))
	}
	id := b.nextID
	b.nextID++
	b.subs[id] = fn
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (b *broker) handlers() []func(Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]func(Event), 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.subs[id])
	}
	return out
}

func (b *broker) publish(events ...Event) {
	if len(events) == 0 {
		return
	}
	hs := b.handlers()
	for _, ev := range events {
		for _, h := range hs {
			h(ev)
		}
	}
}
