package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slog"

	"darak/internal/domain/record"
)

type RecordRepository struct {
	storage *Storage
	log     *slog.Logger
}

func NewRecordRepository(storage *Storage, log *slog.Logger) *RecordRepository {
	return &RecordRepository{
		storage: storage,
		log:     log,
	}
}

const recordColumns = `id, owner_id, date, title, category, location, release_year,
       rating, mood, review, details, shared_with, image, youtube, audio, dominant_color`

// Save is an upsert keyed by id. The CASE on owner_id makes "never
// overwrite an existing owner" atomic with the write itself.
func (r *RecordRepository) Save(ctx context.Context, rec *record.Record) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if err := execSaveRecord(ctx, db, rec); err != nil {
		return fmt.Errorf("%w: save: %v", record.ErrTransaction, err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// execSaveRecord runs the record upsert against a database or an open
// transaction (the legacy migrator commits through the latter).
func execSaveRecord(ctx context.Context, ex execer, rec *record.Record) error {
	details, err := json.Marshal(rec.Details)
	if err != nil {
		return fmt.Errorf("encode details: %w", err)
	}
	shared, err := json.Marshal(rec.SharedWith)
	if err != nil {
		return fmt.Errorf("encode shared_with: %w", err)
	}

	_, err = ex.ExecContext(ctx, `
		INSERT INTO records (`+recordColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner_id = CASE
				WHEN records.owner_id IS NOT NULL AND records.owner_id != ''
					THEN records.owner_id
				ELSE excluded.owner_id
			END,
			date = excluded.date,
			title = excluded.title,
			category = excluded.category,
			location = excluded.location,
			release_year = excluded.release_year,
			rating = excluded.rating,
			mood = excluded.mood,
			review = excluded.review,
			details = excluded.details,
			shared_with = excluded.shared_with,
			image = excluded.image,
			youtube = excluded.youtube,
			audio = excluded.audio,
			dominant_color = excluded.dominant_color
	`, rec.ID, nullable(rec.OwnerID), rec.Date, rec.Title, rec.Category, rec.Location,
		rec.ReleaseYear, rec.Rating, rec.Mood, rec.Review, string(details), string(shared),
		nullable(rec.Image), rec.YouTube, nullable(rec.Audio), nullable(rec.DominantColor))
	return err
}

// Delete removes a record; deleting an absent id succeeds without effect.
func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return err
	}

	if _, err := db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete: %v", record.ErrTransaction, err)
	}
	return nil
}

func (r *RecordRepository) Get(ctx context.Context, id int64) (*record.Record, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT `+recordColumns+` FROM records WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, record.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get: %v", record.ErrTransaction, err)
	}
	return rec, nil
}

// List returns every record in insertion order (ids are creation
// timestamps, so ascending id is creation order).
func (r *RecordRepository) List(ctx context.Context) ([]record.Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records ORDER BY id`)
}

func (r *RecordRepository) ListByDate(ctx context.Context, date string) ([]record.Record, error) {
	return r.list(ctx, `SELECT `+recordColumns+` FROM records WHERE date = ? ORDER BY id`, date)
}

func (r *RecordRepository) list(ctx context.Context, query string, args ...any) ([]record.Record, error) {
	db, err := r.storage.Await(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list: %v", record.ErrTransaction, err)
	}
	defer rows.Close()

	var records []record.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan: %v", record.ErrTransaction, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate: %v", record.ErrTransaction, err)
	}

	return records, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*record.Record, error) {
	var rec record.Record
	var owner, image, audio, color sql.NullString
	var details, shared string

	err := row.Scan(&rec.ID, &owner, &rec.Date, &rec.Title, &rec.Category, &rec.Location,
		&rec.ReleaseYear, &rec.Rating, &rec.Mood, &rec.Review, &details, &shared,
		&image, &rec.YouTube, &audio, &color)
	if err != nil {
		return nil, err
	}

	rec.OwnerID = owner.String
	rec.Image = image.String
	rec.Audio = audio.String
	rec.DominantColor = color.String

	if err := json.Unmarshal([]byte(details), &rec.Details); err != nil {
		return nil, fmt.Errorf("parse details: %w", err)
	}
	if err := json.Unmarshal([]byte(shared), &rec.SharedWith); err != nil {
		return nil, fmt.Errorf("parse shared_with: %w", err)
	}
	if rec.SharedWith == nil {
		rec.SharedWith = []string{}
	}

	return &rec, nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
