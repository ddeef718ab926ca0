// A local calendar event store, exposed to the conversational agent as a
// set of CRUD tools.
package calendar

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dromara/carbon/v2"
	"github.com/gofrs/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/stewardhq/steward/src/log"
	"github.com/stewardhq/steward/src/models"
)

var ErrEventNotFound = errors.New("calendar event not found")

// Store persists calendar events in a sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at the given path and makes sure
// the schema exists.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		summary TEXT NOT NULL,
		description TEXT,
		location TEXT,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_events_start ON events(start_time);`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Log.Info("calendar.main.Open(): event store initialized: " + path)
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// CreateEvent stores a new event. Start and End accept RFC3339 or any of
// the relaxed formats the date parser understands; a missing End defaults
// to one hour after Start.
func (s *Store) CreateEvent(event models.CalendarEvent) (models.CalendarEvent, error) {
	if event.Summary == "" {
		return models.CalendarEvent{}, errors.New("summary is required")
	}
	start := carbon.Parse(event.Start)
	if !start.IsValid() {
		return models.CalendarEvent{}, errors.New("invalid start time: " + event.Start)
	}

	var end *carbon.Carbon
	if event.End == "" {
		// AddHour mutates its receiver, the copy keeps Start intact.
		end = start.Copy().AddHour()
	} else {
		end = carbon.Parse(event.End)
		if !end.IsValid() {
			return models.CalendarEvent{}, errors.New("invalid end time: " + event.End)
		}
	}

	id, err := uuid.NewV4()
	if err != nil {
		return models.CalendarEvent{}, err
	}

	now := time.Now().Unix()
	event.ID = id.String()
	event.Start = start.ToRfc3339String()
	event.End = end.ToRfc3339String()
	event.CreatedAt = now
	event.UpdatedAt = now

	_, err = s.db.Exec(
		`INSERT INTO events (id, summary, description, location, start_time, end_time, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		event.ID, event.Summary, event.Description, event.Location, event.Start, event.End, event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	log.Log.Info("calendar.main.CreateEvent(): created event " + event.ID + " - " + event.Summary)
	return event, nil
}

// GetEvent returns a single event by id.
func (s *Store) GetEvent(id string) (models.CalendarEvent, error) {
	row := s.db.QueryRow(
		`SELECT id, summary, description, location, start_time, end_time, created_at, updated_at
		 FROM events WHERE id = ?`, id)
	return scanEvent(row)
}

// UpcomingEvents lists events starting between now and now + days,
// ordered by start time.
func (s *Store) UpcomingEvents(days int, maxResults int) ([]models.CalendarEvent, error) {
	if days <= 0 {
		days = 7
	}
	if maxResults <= 0 {
		maxResults = 10
	}

	now := carbon.Now()
	until := now.AddDays(days)

	rows, err := s.db.Query(
		`SELECT id, summary, description, location, start_time, end_time, created_at, updated_at
		 FROM events WHERE start_time >= ? AND start_time <= ? ORDER BY start_time ASC LIMIT ?`,
		now.ToRfc3339String(), until.ToRfc3339String(), maxResults)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []models.CalendarEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// UpdateEvent overwrites the non-empty fields of an existing event.
func (s *Store) UpdateEvent(id string, updates models.CalendarEvent) (models.CalendarEvent, error) {
	event, err := s.GetEvent(id)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	if updates.Summary != "" {
		event.Summary = updates.Summary
	}
	if updates.Description != "" {
		event.Description = updates.Description
	}
	if updates.Location != "" {
		event.Location = updates.Location
	}
	if updates.Start != "" {
		start := carbon.Parse(updates.Start)
		if !start.IsValid() {
			return models.CalendarEvent{}, errors.New("invalid start time: " + updates.Start)
		}
		event.Start = start.ToRfc3339String()
	}
	if updates.End != "" {
		end := carbon.Parse(updates.End)
		if !end.IsValid() {
			return models.CalendarEvent{}, errors.New("invalid end time: " + updates.End)
		}
		event.End = end.ToRfc3339String()
	}
	event.UpdatedAt = time.Now().Unix()

	_, err = s.db.Exec(
		`UPDATE events SET summary = ?, description = ?, location = ?, start_time = ?, end_time = ?, updated_at = ?
		 WHERE id = ?`,
		event.Summary, event.Description, event.Location, event.Start, event.End, event.UpdatedAt, id)
	if err != nil {
		return models.CalendarEvent{}, err
	}

	log.Log.Info("calendar.main.UpdateEvent(): updated event " + id)
	return event, nil
}

// DeleteEvent removes an event by id.
func (s *Store) DeleteEvent(id string) error {
	result, err := s.db.Exec(`DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrEventNotFound
	}
	log.Log.Info("calendar.main.DeleteEvent(): deleted event " + id)
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanEvent(row scanner) (models.CalendarEvent, error) {
	var event models.CalendarEvent
	err := row.Scan(&event.ID, &event.Summary, &event.Description, &event.Location,
		&event.Start, &event.End, &event.CreatedAt, &event.UpdatedAt)
	if err == sql.ErrNoRows {
		return models.CalendarEvent{}, ErrEventNotFound
	}
	return event, err
}
