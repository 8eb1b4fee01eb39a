package audit

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"realty/internal/domain"
)

// FileSink appends one text line per event to a role-appropriate log file:
// registrations to users.log, catalog changes to properties.log, booking
// lifecycle to bookings.log.
type FileSink struct {
	mu  sync.Mutex
	dir string
}

func NewFileSink(dir string) (*FileSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSink{dir: dir}, nil
}

func (s *FileSink) Publish(e domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line := fmt.Sprintf("%s kind=%s subject=%d %s", time.Now().Format(time.RFC3339), e.Kind, e.SubjectID, e.Note)
	path := filepath.Join(s.dir, fileFor(e.Kind))

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		log.Printf("audit_file_error event_id=%s error=%q", e.ID, err)
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		log.Printf("audit_file_error event_id=%s error=%q", e.ID, err)
	}
}

func fileFor(kind domain.EventKind) string {
	switch kind {
	case domain.EventRegistered:
		return "users.log"
	case domain.EventAdded, domain.EventRemoved:
		return "properties.log"
	default:
		return "bookings.log"
	}
}
