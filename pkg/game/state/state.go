// Package state holds presentation-side state that outlives a single game
package state

import "sync"

const maxMessages = 5

// MessageLog keeps the most recent player-facing messages
type MessageLog struct {
	mu       sync.Mutex
	messages []string
}

// AddMessage adds a message to the log, dropping the oldest beyond the limit
func (l *MessageLog) AddMessage(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, msg)

	// Keep only the last maxMessages
	if len(l.messages) > maxMessages {
		l.messages = l.messages[len(l.messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (l *MessageLog) ClearMessages() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = nil
}

// Messages returns a copy of the logged messages, oldest first
func (l *MessageLog) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.messages))
	copy(out, l.messages)
	return out
}
