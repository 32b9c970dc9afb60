package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrProfileNotFound = errors.New("profile not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// Upsert creates the profile on first write and overwrites it afterwards.
// The profile is a single row per client, there is no history.
func (r *Repo) Upsert(ctx context.Context, snapshot Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", snapshot.ClientID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO client_profile
				(client_id, display_name, goal, weight, target_weight, height, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (client_id) DO UPDATE SET
				display_name = EXCLUDED.display_name,
				goal = EXCLUDED.goal,
				weight = EXCLUDED.weight,
				target_weight = EXCLUDED.target_weight,
				height = EXCLUDED.height,
				updated_at = EXCLUDED.updated_at;`,
		snapshot.ClientID, snapshot.DisplayName, snapshot.Goal,
		snapshot.Weight, snapshot.TargetWeight, snapshot.Height,
		time.Now(),
	)
	return err
}

func (r *Repo) Get(ctx context.Context, clientID string) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", clientID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				client_id, display_name, goal, weight, target_weight, height, updated_at
			FROM client_profile
			WHERE client_id = $1;`,
		clientID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	snapshots, err := r.rows2snapshots(rows)
	if err != nil {
		return nil, err
	}

	if len(snapshots) != 1 {
		return nil, ErrProfileNotFound
	}

	return &snapshots[0], nil
}

// ListClients returns the full coaching roster, most recently updated first.
func (r *Repo) ListClients(ctx context.Context) (_ []Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.profile.listclients")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				client_id, display_name, goal, weight, target_weight, height, updated_at
			FROM client_profile
			ORDER BY updated_at DESC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	snapshots, err := r.rows2snapshots(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2snapshots: %w", err)
	}
	return snapshots, nil
}

func (r *Repo) rows2snapshots(rows pgx.Rows) ([]Snapshot, error) {
	var snapshots []Snapshot
	for rows.Next() {
		var clientID string
		var displayName string
		var goal string
		var weight *float64
		var targetWeight *float64
		var height *float64
		var updatedAt time.Time
		if err := rows.Scan(&clientID, &displayName, &goal, &weight, &targetWeight, &height, &updatedAt); err != nil {
			return nil, err
		}

		snapshots = append(snapshots, Snapshot{
			ClientID:     clientID,
			DisplayName:  displayName,
			Goal:         goal,
			Weight:       weight,
			TargetWeight: targetWeight,
			Height:       height,
			UpdatedAt:    updatedAt,
		})
	}

	if snapshots == nil {
		snapshots = make([]Snapshot, 0)
	}

	return snapshots, nil
}
