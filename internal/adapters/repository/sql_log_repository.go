package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hardlevel/hardlevel-core/internal/core/domain"
)

var (
	_ domain.LogRepository  = (*SQLLogRepository)(nil)
	_ domain.LogRangeReader = (*SQLLogRepository)(nil)
)

// Schema is valid for both PostgreSQL and SQLite.
const Schema = `
CREATE TABLE IF NOT EXISTS day_logs (
	log_date      TEXT PRIMARY KEY,
	workout1      BOOLEAN NOT NULL DEFAULT FALSE,
	workout2      BOOLEAN NOT NULL DEFAULT FALSE,
	diet          BOOLEAN NOT NULL DEFAULT FALSE,
	water         BOOLEAN NOT NULL DEFAULT FALSE,
	reading       BOOLEAN NOT NULL DEFAULT FALSE,
	photo         BOOLEAN NOT NULL DEFAULT FALSE,
	weight_kg     DOUBLE PRECISION,
	fasting_hours DOUBLE PRECISION,
	updated_at    TIMESTAMP NOT NULL
)`

// SQLLogRepository stores day logs through sqlx. Queries use '?' placeholders and are
// rebound for the connected driver.
type SQLLogRepository struct {
	db *sqlx.DB
}

func NewSQLLogRepository(db *sqlx.DB) *SQLLogRepository {
	return &SQLLogRepository{db: db}
}

func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create day_logs table: %w", err)
	}
	return nil
}

type dayLogRow struct {
	Date         string          `db:"log_date"`
	Workout1     bool            `db:"workout1"`
	Workout2     bool            `db:"workout2"`
	Diet         bool            `db:"diet"`
	Water        bool            `db:"water"`
	Reading      bool            `db:"reading"`
	Photo        bool            `db:"photo"`
	WeightKg     sql.NullFloat64 `db:"weight_kg"`
	FastingHours sql.NullFloat64 `db:"fasting_hours"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

func toRow(l *domain.DayLog) dayLogRow {
	row := dayLogRow{
		Date:      l.Date,
		Workout1:  l.Tasks[domain.TaskWorkout1],
		Workout2:  l.Tasks[domain.TaskWorkout2],
		Diet:      l.Tasks[domain.TaskDiet],
		Water:     l.Tasks[domain.TaskWater],
		Reading:   l.Tasks[domain.TaskReading],
		Photo:     l.Tasks[domain.TaskPhoto],
		UpdatedAt: l.UpdatedAt.UTC(),
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = time.Now().UTC()
	}
	if l.WeightKg != nil {
		row.WeightKg = sql.NullFloat64{Float64: *l.WeightKg, Valid: true}
	}
	if l.FastingHours != nil {
		row.FastingHours = sql.NullFloat64{Float64: *l.FastingHours, Valid: true}
	}
	return row
}

func (row dayLogRow) toDomain() *domain.DayLog {
	l := domain.NewDayLog(row.Date)
	l.Tasks[domain.TaskWorkout1] = row.Workout1
	l.Tasks[domain.TaskWorkout2] = row.Workout2
	l.Tasks[domain.TaskDiet] = row.Diet
	l.Tasks[domain.TaskWater] = row.Water
	l.Tasks[domain.TaskReading] = row.Reading
	l.Tasks[domain.TaskPhoto] = row.Photo
	l.UpdatedAt = row.UpdatedAt.UTC()
	if row.WeightKg.Valid {
		w := row.WeightKg.Float64
		l.WeightKg = &w
	}
	if row.FastingHours.Valid {
		f := row.FastingHours.Float64
		l.FastingHours = &f
	}
	return l
}

const selectColumns = `log_date, workout1, workout2, diet, water, reading, photo, weight_kg, fasting_hours, updated_at`

func (r *SQLLogRepository) GetByDate(ctx context.Context, date string) (*domain.DayLog, error) {
	var row dayLogRow
	query := r.db.Rebind(`SELECT ` + selectColumns + ` FROM day_logs WHERE log_date = ?`)

	err := r.db.GetContext(ctx, &row, query, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load day log %s: %w", date, err)
	}
	return row.toDomain(), nil
}

func (r *SQLLogRepository) Save(ctx context.Context, log *domain.DayLog) error {
	query := `
		INSERT INTO day_logs (
			log_date, workout1, workout2, diet, water, reading, photo,
			weight_kg, fasting_hours, updated_at
		) VALUES (
			:log_date, :workout1, :workout2, :diet, :water, :reading, :photo,
			:weight_kg, :fasting_hours, :updated_at
		)
		ON CONFLICT (log_date) DO UPDATE SET
			workout1 = excluded.workout1,
			workout2 = excluded.workout2,
			diet = excluded.diet,
			water = excluded.water,
			reading = excluded.reading,
			photo = excluded.photo,
			weight_kg = excluded.weight_kg,
			fasting_hours = excluded.fasting_hours,
			updated_at = excluded.updated_at`

	if _, err := r.db.NamedExecContext(ctx, query, toRow(log)); err != nil {
		return fmt.Errorf("failed to save day log %s: %w", log.Date, err)
	}
	return nil
}

func (r *SQLLogRepository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.DayLog, error) {
	rows := []dayLogRow{}
	query := r.db.Rebind(`
		SELECT ` + selectColumns + ` FROM day_logs
		WHERE log_date >= ? AND log_date <= ?
		ORDER BY log_date ASC`)

	err := r.db.SelectContext(ctx, &rows, query, domain.FormatDate(from), domain.FormatDate(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list day logs: %w", err)
	}

	logs := make([]*domain.DayLog, 0, len(rows))
	for _, row := range rows {
		logs = append(logs, row.toDomain())
	}
	return logs, nil
}
