package helper

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"restaurant_manager/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := db.AutoMigrate(model.Tables()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value any) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("create %T: %v", value, err)
	}
}

func count(t *testing.T, db *gorm.DB, value any) int64 {
	t.Helper()
	var n int64
	if err := db.Model(value).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", value, err)
	}
	return n
}

type capturedEvents struct {
	mu       sync.Mutex
	channels []string
	events   []KitchenEvent
}

func (c *capturedEvents) all() ([]string, []KitchenEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.channels...), append([]KitchenEvent(nil), c.events...)
}

func capturePublished(t *testing.T) *capturedEvents {
	t.Helper()
	captured := &capturedEvents{}
	original := publish
	publish = func(ctx context.Context, channel string, payload []byte) error {
		var event KitchenEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			t.Errorf("decode event: %v", err)
		}
		captured.mu.Lock()
		captured.channels = append(captured.channels, channel)
		captured.events = append(captured.events, event)
		captured.mu.Unlock()
		return nil
	}
	t.Cleanup(func() { publish = original })
	return captured
}
