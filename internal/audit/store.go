package audit

import (
	"errors"
	"log"
	"time"

	"realty/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Record is one persisted audit event.
type Record struct {
	ID        int64     `gorm:"primaryKey"`
	EventID   string    `gorm:"column:event_id;uniqueIndex"`
	Kind      string    `gorm:"column:kind"`
	SubjectID int64     `gorm:"column:subject_id"`
	Note      string    `gorm:"column:note"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (Record) TableName() string { return "audit_events" }

// Store persists events to the audit table. Delivery can repeat (fan-out
// sinks, process restarts replaying a file), so the unique event id makes
// writes idempotent.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Publish(e domain.Event) {
	rec := Record{
		EventID:   e.ID,
		Kind:      string(e.Kind),
		SubjectID: e.SubjectID,
		Note:      e.Note,
	}

	if err := s.db.Create(&rec).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return // already delivered
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return
		}
		log.Printf("audit_store_error event_id=%s error=%q", e.ID, err)
	}
}

// Recent returns the latest audit records, newest first.
func (s *Store) Recent(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 50
	}
	var records []Record
	err := s.db.Order("id DESC").Limit(limit).Find(&records).Error
	return records, err
}
