package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one persisted key-value pair. The value column holds the JSON
// document the cart serializes, so the table mirrors the single-key record
// format rather than a normalized line-item schema.
type Record struct {
	RecordKey string         `gorm:"column:record_key;primaryKey;size:191"`
	Value     datatypes.JSON `gorm:"column:value"`
	UpdatedAt time.Time
}

func (Record) TableName() string { return "kv_records" }

// MySQLStore persists cart records in a MySQL key-value table.
type MySQLStore struct {
	db *gorm.DB
}

func NewMySQL(db *gorm.DB) *MySQLStore {
	return &MySQLStore{db: db}
}

func (s *MySQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var record Record
	err := s.db.WithContext(ctx).First(&record, "record_key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return []byte(record.Value), nil
}

func (s *MySQLStore) Set(ctx context.Context, key string, value []byte) error {
	record := Record{RecordKey: key, Value: datatypes.JSON(value)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&record).Error
}

func (s *MySQLStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&Record{}, "record_key = ?", key).Error
}
