package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const tableName = "doctor_settings_snapshots"

// Snapshot последние известные настройки врача
type Snapshot struct {
	Config    domain.WorkingHoursConfig
	UpdatedAt time.Time
}

// Repository репозиторий снимков настроек врачей
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория снимков
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Save сохраняет снимок, перезаписывая предыдущий
func (r *Repository) Save(ctx context.Context, cfg domain.WorkingHoursConfig) error {
	query, args, err := buildUpsertQuery(cfg)
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}

// Get получает последний снимок настроек врача
func (r *Repository) Get(ctx context.Context, doctorID string) (*Snapshot, error) {
	query, args, err := buildSelectQuery(doctorID)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var (
		snapshot             Snapshot
		lunchStart, lunchEnd sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&snapshot.Config.DoctorID,
		&snapshot.Config.AppointmentDurationMinutes,
		&snapshot.Config.WorkStart,
		&snapshot.Config.WorkEnd,
		&lunchStart,
		&lunchEnd,
		&snapshot.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan snapshot: %v", ErrScanRow, err)
	}

	snapshot.Config.LunchStart = lunchStart.String
	snapshot.Config.LunchEnd = lunchEnd.String

	return &snapshot, nil
}

func buildUpsertQuery(cfg domain.WorkingHoursConfig) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"doctor_id",
			"appointment_duration_minutes",
			"work_start_time",
			"work_end_time",
			"lunch_start_time",
			"lunch_end_time",
			"updated_at",
		).
		Values(
			cfg.DoctorID,
			cfg.AppointmentDurationMinutes,
			cfg.WorkStart,
			cfg.WorkEnd,
			nullString(cfg.LunchStart),
			nullString(cfg.LunchEnd),
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (doctor_id) DO UPDATE SET
			appointment_duration_minutes = EXCLUDED.appointment_duration_minutes,
			work_start_time = EXCLUDED.work_start_time,
			work_end_time = EXCLUDED.work_end_time,
			lunch_start_time = EXCLUDED.lunch_start_time,
			lunch_end_time = EXCLUDED.lunch_end_time,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
}

func buildSelectQuery(doctorID string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"doctor_id",
		"appointment_duration_minutes",
		"work_start_time",
		"work_end_time",
		"lunch_start_time",
		"lunch_end_time",
		"updated_at",
	).
		From(tableName).
		Where(squirrel.Eq{"doctor_id": doctorID}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
