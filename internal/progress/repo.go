package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"
	"github.com/peakform/peakformcom/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrMeasurementNotFound = errors.New("measurement not found")
	ErrMeasurementExists   = errors.New("measurement already exists")
)

type MeasurementParams struct {
	ClientID string
	Type     string
	From     *time.Time
	To       *time.Time
}

type ListParams struct {
	MeasurementParams
	Page int
	Size int
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, m Measurement) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if m.ID == "" {
		m.ID = uuid.NewString()
	}

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO measurement
				(id, client_id, type, value, unit, recorded_at, notes, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
		m.ID, m.ClientID, m.Type.String(), m.Value, m.Unit, m.RecordedAt, m.Notes, time.Now(),
	)
	if err != nil {
		// client apps retry adds with the same generated id
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrMeasurementExists
		}
		return nil, err
	}

	span.SetAttributes(attribute.String("measurement.id", m.ID))

	return &m, nil
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, client_id, type, value, unit, recorded_at, notes
			FROM measurement
			WHERE id = $1;`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, err
	}

	if len(measurements) != 1 {
		return nil, ErrMeasurementNotFound
	}

	return &measurements[0], nil
}

// ListAll returns all measurements matching the given filters, newest first.
func (r *Repo) ListAll(ctx context.Context, params MeasurementParams) (_ []Measurement, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", params.ClientID))
	span.SetAttributes(attribute.String("type", params.Type))
	if params.From != nil {
		span.SetAttributes(attribute.String("from", params.From.String()))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", params.To.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, client_id, type, value, unit, recorded_at, notes
			FROM measurement
				WHERE ($1::text = '' OR client_id = $1)
				AND ($2::text = '' OR type = $2)
				AND ($3::timestamp IS NULL OR recorded_at >= $3)
				AND ($4::timestamp IS NULL OR recorded_at <= $4)
			ORDER BY recorded_at DESC;`,
		params.ClientID, params.Type,
		params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2measurements: %w", err)
	}
	return measurements, nil
}

// List is like ListAll, but returns the specific PAGE of measurements,
// i.e. is used for pagination.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Measurement, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.String("client_id", params.ClientID))
	span.SetAttributes(attribute.String("type", params.Type))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.MeasurementsCount(ctx, params.MeasurementParams)
	if err != nil {
		return nil, -1, err
	}

	if countAll <= limit {
		limit = countAll
		offset = 0
	}

	if countAll-offset < limit {
		offset = countAll - limit
	}

	span.SetAttributes(attribute.Int("count_all", countAll))
	span.SetAttributes(attribute.Int("limit", limit))
	span.SetAttributes(attribute.Int("offset", offset))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, client_id, type, value, unit, recorded_at, notes
			FROM measurement
				WHERE ($1::text = '' OR client_id = $1)
				AND ($2::text = '' OR type = $2)
			ORDER BY recorded_at DESC
			LIMIT $3
			OFFSET $4;`,
		params.ClientID, params.Type,
		limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	measurements, err := r.rows2measurements(rows)
	if err != nil {
		return nil, -1, err
	}
	return measurements, countAll, nil
}

func (r *Repo) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM measurement WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMeasurementNotFound
	}
	return nil
}

func (r *Repo) MeasurementsCount(ctx context.Context, params MeasurementParams) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.progress.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM measurement
			WHERE ($1::text = '' OR client_id = $1)
			AND ($2::text = '' OR type = $2)
			AND ($3::timestamp IS NULL OR recorded_at >= $3)
			AND ($4::timestamp IS NULL OR recorded_at <= $4);
	`,
		params.ClientID, params.Type,
		params.From, params.To,
	)
	if err != nil {
		return -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return -1, err
	}

	if rows.Next() {
		var count int
		if err := rows.Scan(&count); err == nil {
			return count, nil
		}
	}

	return -1, errors.New("unexpected error, failed to get measurements count")
}

func (r *Repo) rows2measurements(rows pgx.Rows) ([]Measurement, error) {
	var measurements []Measurement
	for rows.Next() {
		var id string
		var clientID string
		var mType string
		var value float64
		var unit string
		var recordedAt time.Time
		var notes string
		if err := rows.Scan(&id, &clientID, &mType, &value, &unit, &recordedAt, &notes); err != nil {
			return nil, err
		}

		measurements = append(measurements, Measurement{
			ID:         id,
			ClientID:   clientID,
			Type:       MeasurementType(mType),
			Value:      value,
			Unit:       unit,
			RecordedAt: recordedAt,
			Notes:      notes,
		})
	}

	if measurements == nil {
		measurements = make([]Measurement, 0)
	}

	return measurements, nil
}
