// Package messages holds the in-game message log shown in the messages panel.
package messages

import (
	"iter"
	"time"
)

// DefaultCapacity is the number of messages kept when no capacity is given.
const DefaultCapacity = 100

// Type classifies a message for display.
type Type int

const (
	Info Type = iota
	Error
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case Info:
		return "info"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Message is a single log entry.
type Message struct {
	Text string
	Type Type
	Time time.Time
}

// Log keeps the most recent messages, newest first.
// Appending past capacity drops the oldest message.
type Log struct {
	items    []Message // oldest first
	capacity int
	now      func() time.Time
}

// NewLog creates a log bounded to capacity messages.
// A capacity below one uses DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{
		items:    make([]Message, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Add appends a message stamped with the current time.
func (l *Log) Add(text string, typ Type) {
	l.items = append(l.items, Message{Text: text, Type: typ, Time: l.now()})
	l.trim()
}

// Info appends an informational message.
func (l *Log) Info(text string) {
	l.Add(text, Info)
}

// Error appends an error message.
func (l *Log) Error(text string) {
	l.Add(text, Error)
}

// Len returns the number of messages held.
func (l *Log) Len() int {
	return len(l.items)
}

// Capacity returns the maximum number of messages held.
func (l *Log) Capacity() int {
	return l.capacity
}

// Items yields messages newest first. The sequence can be ranged over any number of times.
func (l *Log) Items() iter.Seq[Message] {
	return func(yield func(Message) bool) {
		for i := len(l.items) - 1; i >= 0; i-- {
			if !yield(l.items[i]) {
				return
			}
		}
	}
}

// Latest returns up to n of the newest messages, newest first.
func (l *Log) Latest(n int) []Message {
	n = max(n, 0)
	out := make([]Message, 0, min(n, len(l.items)))
	for msg := range l.Items() {
		if len(out) >= n {
			break
		}
		out = append(out, msg)
	}
	return out
}

func (l *Log) trim() {
	if over := len(l.items) - l.capacity; over > 0 {
		l.items = append(l.items[:0], l.items[over:]...)
	}
}
