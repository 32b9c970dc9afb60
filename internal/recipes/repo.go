package recipes

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

var ErrRecipeNotFound = errors.New("recipe not found")

type ListParams struct {
	Tag  string
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

func (r *Repo) Add(ctx context.Context, recipe Recipe) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO recipe
				(title, content, calories, tags, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		recipe.Title, recipe.Content, recipe.Calories, joinTags(recipe.Tags), now, now,
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

	span.SetAttributes(attribute.Int("recipe.id", id))

	recipe.ID = id
	recipe.CreatedAt = now
	recipe.UpdatedAt = now
	return &recipe, nil
}

func (r *Repo) Update(ctx context.Context, recipe *Recipe) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", recipe.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE recipe SET title = $1, content = $2, calories = $3, tags = $4, updated_at = $5 WHERE id = $6;`,
		recipe.Title, recipe.Content, recipe.Calories, joinTags(recipe.Tags), time.Now(), recipe.ID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM recipe WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecipeNotFound
	}
	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Recipe, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, title, content, calories, tags, created_at, updated_at
			FROM recipe
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

	recipes, err := r.rows2recipes(rows)
	if err != nil {
		return nil, err
	}

	if len(recipes) != 1 {
		return nil, ErrRecipeNotFound
	}

	return &recipes[0], nil
}

// List returns the given PAGE of recipes, newest first, optionally
// filtered by tag.
func (r *Repo) List(ctx context.Context, params ListParams) (_ []Recipe, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", params.Page))
	span.SetAttributes(attribute.Int("size", params.Size))
	span.SetAttributes(attribute.String("tag", params.Tag))

	if params.Page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if params.Size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	countAll, err := r.RecipesCount(ctx, params.Tag)
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

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, title, content, calories, tags, created_at, updated_at
			FROM recipe
				WHERE ($1::text = '' OR tags LIKE '%' || $1 || '%')
			ORDER BY created_at DESC
			LIMIT $2
			OFFSET $3;`,
		params.Tag, limit, offset,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	recipes, err := r.rows2recipes(rows)
	if err != nil {
		return nil, -1, err
	}
	return recipes, countAll, nil
}

func (r *Repo) RecipesCount(ctx context.Context, tag string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.recipes.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT COUNT(*) FROM recipe
			WHERE ($1::text = '' OR tags LIKE '%' || $1 || '%');
	`, tag)
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

	return -1, errors.New("unexpected error, failed to get recipes count")
}

func (r *Repo) rows2recipes(rows pgx.Rows) ([]Recipe, error) {
	var recipes []Recipe
	for rows.Next() {
		var id int
		var title string
		var content string
		var calories *int
		var tags string
		var createdAt time.Time
		var updatedAt time.Time
		if err := rows.Scan(&id, &title, &content, &calories, &tags, &createdAt, &updatedAt); err != nil {
			return nil, err
		}

		recipes = append(recipes, Recipe{
			ID:        id,
			Title:     title,
			Content:   content,
			Calories:  calories,
			Tags:      splitTags(tags),
			CreatedAt: createdAt,
			UpdatedAt: updatedAt,
		})
	}

	if recipes == nil {
		recipes = make([]Recipe, 0)
	}

	return recipes, nil
}
