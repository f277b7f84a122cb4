// Package alert holds the single transient message slot shared by success
// and fault text.
package alert

import (
	"sync"
	"time"
)

const DefaultTTL = 2000 * time.Millisecond

type Kind string

const (
	KindSuccess Kind = "success"
	KindFault   Kind = "fault"
)

type Message struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// Banner clears its message automatically after the TTL unless it is
// dismissed or replaced first. Setting a new message restarts the timer.
type Banner struct {
	mu     sync.Mutex
	ttl    time.Duration
	cur    *Message
	timer  *time.Timer
	gen    uint64
	closed bool
}

func NewBanner(ttl time.Duration) *Banner {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Banner{ttl: ttl}
}

func (b *Banner) Set(kind Kind, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.cur = &Message{Kind: kind, Text: text}
	b.timer = time.AfterFunc(b.ttl, func() { b.expire(gen) })
}

func (b *Banner) expire(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// a Set since scheduling owns the slot now
	if b.gen != gen {
		return
	}
	b.cur = nil
}

func (b *Banner) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.cur = nil
}

func (b *Banner) Current() (Message, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cur == nil {
		return Message{}, false
	}
	return *b.cur, true
}

// Close cancels any pending auto-clear so no callback fires after teardown.
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.cur = nil
}
