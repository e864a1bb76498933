// Package audit keeps the append-only system log in its own storage
// slot, independent of the application document. Entries are ordered
// most-recent-first and the list is never capped.
package audit

import (
	"sync"
	"time"

	"github.com/healthmatch/healthmatch-api/internal/models"
	"github.com/healthmatch/healthmatch-api/internal/storage"
)

const logsKey = "healthMatchDirectSystemLogs"

type Logger struct {
	store storage.Store
	mu    sync.Mutex
}

func NewLogger(store storage.Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) load() []models.SystemLog {
	logs := []models.SystemLog{}
	l.store.Read(logsKey, &logs)
	return logs
}

// Add prepends an entry and persists the whole list. actor may be nil
// for system events.
func (l *Logger) Add(message string, actor *models.LogActor) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := models.SystemLog{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Message:   message,
		User:      actor,
	}
	logs := append([]models.SystemLog{entry}, l.load()...)
	return l.store.Write(logsKey, logs)
}

// Logs returns the full list, newest first.
func (l *Logger) Logs() []models.SystemLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.load()
}

// Clear empties the log slot.
func (l *Logger) Clear() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.store.Write(logsKey, []models.SystemLog{})
}
