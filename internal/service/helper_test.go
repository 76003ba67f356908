package service

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"notes-be/internal/model"
	"notes-be/internal/repository/unitofwork"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, model.Migrate(db))
	return db
}

func newTestService(t *testing.T) INoteService {
	t.Helper()
	db := newTestDB(t)
	return NewNoteService(unitofwork.NewRepositoryFactory(db), nil, nil)
}

// capturingLogger records entries for assertions.
type capturingLogger struct {
	mu      sync.Mutex
	entries []capturedEntry
}

type capturedEntry struct {
	Level   string
	Module  string
	Message string
	Details map[string]interface{}
}

func (l *capturingLogger) record(level, module, message string, details map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, capturedEntry{level, module, message, details})
}

func (l *capturingLogger) Debug(module, message string, details map[string]interface{}) {
	l.record("DEBUG", module, message, details)
}

func (l *capturingLogger) Info(module, message string, details map[string]interface{}) {
	l.record("INFO", module, message, details)
}

func (l *capturingLogger) Warn(module, message string, details map[string]interface{}) {
	l.record("WARN", module, message, details)
}

func (l *capturingLogger) Error(module, message string, details map[string]interface{}) {
	l.record("ERROR", module, message, details)
}

func (l *capturingLogger) Sync() error { return nil }

func (l *capturingLogger) snapshot() []capturedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]capturedEntry, len(l.entries))
	copy(out, l.entries)
	return out
}
