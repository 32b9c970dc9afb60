package programs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/peakform/peakformcom/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = errors.New("program template not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	contentJson, err := json.Marshal(template.Content)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}

	now := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO program_template
				(kind, title, description, content, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		template.Kind.String(), template.Title, template.Description, contentJson, now, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !rows.Next() {
		return nil, errors.New("unexpected error [no rows next]")
	}

	var id int
	if err := rows.Scan(&id); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("template.id", id))

	template.ID = id
	template.CreatedAt = now
	template.UpdatedAt = now
	return &template, nil
}

func (r *Repo) Update(ctx context.Context, template *Template) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", template.ID))

	contentJson, err := json.Marshal(template.Content)
	if err != nil {
		return fmt.Errorf("marshal content: %w", err)
	}

	tag, err := r.db.Exec(
		ctx,
		`UPDATE program_template SET kind = $1, title = $2, description = $3, content = $4, updated_at = $5 WHERE id = $6;`,
		template.Kind.String(), template.Title, template.Description, contentJson, time.Now(), template.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM program_template WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, kind, title, description, content, created_at, updated_at
			FROM program_template
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

	templates, err := r.rows2templates(rows)
	if err != nil {
		return nil, err
	}

	if len(templates) != 1 {
		return nil, ErrTemplateNotFound
	}

	return &templates[0], nil
}

// ListAll returns all templates, optionally filtered by kind, newest first.
func (r *Repo) ListAll(ctx context.Context, kind string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.programs.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("kind", kind))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, kind, title, description, content, created_at, updated_at
			FROM program_template
				WHERE ($1::text = '' OR kind = $1)
			ORDER BY created_at DESC;`,
		kind,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	templates, err := r.rows2templates(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2templates: %w", err)
	}
	return templates, nil
}

func (r *Repo) rows2templates(rows pgx.Rows) ([]Template, error) {
	var templates []Template
	for rows.Next() {
		var id int
		var kind string
		var title string
		var description string
		var contentBytes []byte
		var createdAt time.Time
		var updatedAt time.Time
		if err := rows.Scan(&id, &kind, &title, &description, &contentBytes, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		t := Template{
			ID:          id,
			Kind:        Kind(kind),
			Title:       title,
			Description: description,
			Content:     make(map[string]any),
			CreatedAt:   createdAt,
			UpdatedAt:   updatedAt,
		}

		if len(contentBytes) > 0 {
			if err := json.Unmarshal(contentBytes, &t.Content); err != nil {
				return nil, fmt.Errorf("unmarshal content for template %d: %w", id, err)
			}
		}

		templates = append(templates, t)
	}

	if templates == nil {
		templates = make([]Template, 0)
	}

	return templates, nil
}
