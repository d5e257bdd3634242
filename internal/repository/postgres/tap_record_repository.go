package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	"github.com/transit-dashboard/internal/domain"
	"github.com/transit-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const importBatchSize = 1000

var tableNameRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

var _ repository.TapRecordRepository = (*TapRecordRepository)(nil)

type tapRecordRow struct {
	TapInTime      time.Time       `db:"tap_in_time"`
	TapOutTime     sql.NullTime    `db:"tap_out_time"`
	CorridorName   sql.NullString  `db:"corridor_name"`
	PayCardBank    sql.NullString  `db:"pay_card_bank"`
	PayCardSex     sql.NullString  `db:"pay_card_sex"`
	TapInStopsLat  sql.NullFloat64 `db:"tap_in_stops_lat"`
	TapInStopsLon  sql.NullFloat64 `db:"tap_in_stops_lon"`
	TapOutStopsLat sql.NullFloat64 `db:"tap_out_stops_lat"`
	TapOutStopsLon sql.NullFloat64 `db:"tap_out_stops_lon"`
}

// TapRecordRepository stores tap records in a single Postgres table.
type TapRecordRepository struct {
	db     *DB
	table  string
	logger *zap.Logger
}

// NewTapRecordRepository validates the table name, since it is interpolated into SQL.
func NewTapRecordRepository(db *DB, table string, logger *zap.Logger) (*TapRecordRepository, error) {
	if !tableNameRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	return &TapRecordRepository{
		db:     db,
		table:  table,
		logger: logger,
	}, nil
}

func (r *TapRecordRepository) Source() string {
	return "postgres:" + r.table
}

// EnsureSchema creates the table if it does not exist.
func (r *TapRecordRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id                BIGSERIAL PRIMARY KEY,
			tap_in_time       TIMESTAMP NOT NULL,
			tap_out_time      TIMESTAMP,
			corridor_name     TEXT,
			pay_card_bank     TEXT,
			pay_card_sex      TEXT,
			tap_in_stops_lat  DOUBLE PRECISION,
			tap_in_stops_lon  DOUBLE PRECISION,
			tap_out_stops_lat DOUBLE PRECISION,
			tap_out_stops_lon DOUBLE PRECISION
		)`, r.table)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create table %s: %w", r.table, err)
	}
	return nil
}

// LoadAll returns records in insertion order.
func (r *TapRecordRepository) LoadAll(ctx context.Context) ([]domain.TapRecord, error) {
	query := fmt.Sprintf(`
		SELECT
			tap_in_time, tap_out_time, corridor_name, pay_card_bank, pay_card_sex,
			tap_in_stops_lat, tap_in_stops_lon, tap_out_stops_lat, tap_out_stops_lon
		FROM %s
		ORDER BY id`, r.table)

	var rows []tapRecordRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select tap records: %w", err)
	}

	records := make([]domain.TapRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.toDomain())
	}

	r.logger.Debug("Tap records loaded", zap.String("table", r.table), zap.Int("rows", len(records)))
	return records, nil
}

// Import appends records in batches inside one transaction and returns the
// number of inserted rows.
func (r *TapRecordRepository) Import(ctx context.Context, records []domain.TapRecord) (int, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (
			tap_in_time, tap_out_time, corridor_name, pay_card_bank, pay_card_sex,
			tap_in_stops_lat, tap_in_stops_lon, tap_out_stops_lat, tap_out_stops_lon
		) VALUES (
			:tap_in_time, :tap_out_time, :corridor_name, :pay_card_bank, :pay_card_sex,
			:tap_in_stops_lat, :tap_in_stops_lon, :tap_out_stops_lat, :tap_out_stops_lon
		)`, r.table)

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	inserted := 0
	for start := 0; start < len(records); start += importBatchSize {
		end := start + importBatchSize
		if end > len(records) {
			end = len(records)
		}

		batch := make([]tapRecordRow, 0, end-start)
		for _, rec := range records[start:end] {
			batch = append(batch, fromDomain(rec))
		}

		if _, err := tx.NamedExecContext(ctx, query, batch); err != nil {
			return 0, fmt.Errorf("insert batch at %d: %w", start, err)
		}
		inserted += len(batch)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit import: %w", err)
	}

	r.logger.Info("Tap records imported", zap.String("table", r.table), zap.Int("rows", inserted))
	return inserted, nil
}

func (row tapRecordRow) toDomain() domain.TapRecord {
	rec := domain.TapRecord{
		TapInTime:      row.TapInTime,
		CorridorName:   row.CorridorName.String,
		PayCardBank:    row.PayCardBank.String,
		PayCardSex:     row.PayCardSex.String,
		TapInStopsLat:  nullFloat(row.TapInStopsLat),
		TapInStopsLon:  nullFloat(row.TapInStopsLon),
		TapOutStopsLat: nullFloat(row.TapOutStopsLat),
		TapOutStopsLon: nullFloat(row.TapOutStopsLon),
	}
	if row.TapOutTime.Valid {
		t := row.TapOutTime.Time
		rec.TapOutTime = &t
	}
	return domain.NewTapRecord(rec)
}

func fromDomain(rec domain.TapRecord) tapRecordRow {
	row := tapRecordRow{
		TapInTime:      rec.TapInTime,
		CorridorName:   sql.NullString{String: rec.CorridorName, Valid: rec.CorridorName != ""},
		PayCardBank:    sql.NullString{String: rec.PayCardBank, Valid: rec.PayCardBank != ""},
		PayCardSex:     sql.NullString{String: rec.PayCardSex, Valid: rec.PayCardSex != ""},
		TapInStopsLat:  toNullFloat(rec.TapInStopsLat),
		TapInStopsLon:  toNullFloat(rec.TapInStopsLon),
		TapOutStopsLat: toNullFloat(rec.TapOutStopsLat),
		TapOutStopsLon: toNullFloat(rec.TapOutStopsLon),
	}
	if rec.TapOutTime != nil {
		row.TapOutTime = sql.NullTime{Time: *rec.TapOutTime, Valid: true}
	}
	return row
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func toNullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
