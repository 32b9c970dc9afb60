package questions

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

var ErrQuestionNotFound = errors.New("question not found")

type ListParams struct {
	ClientID       string
	OnlyUnanswered bool
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, question Question) (_ *Question, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.questions.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", question.ClientID))

	now := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO question
				(client_id, title, body, created_at)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
		question.ClientID, question.Title, question.Body, now,
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

	span.SetAttributes(attribute.Int("question.id", id))

	question.ID = id
	question.CreatedAt = now
	return &question, nil
}

// Answer stores the coach's answer and stamps the answer time. Answering
// again overwrites the previous answer.
func (r *Repo) Answer(ctx context.Context, id int, answer string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.questions.answer")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE question SET answer = $1, answered_at = $2 WHERE id = $3;`,
		answer, time.Now(), id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrQuestionNotFound
	}

	return nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Question, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.questions.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, client_id, title, body, answer, answered_at, created_at
			FROM question
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

	questions, err := r.rows2questions(rows)
	if err != nil {
		return nil, err
	}

	if len(questions) != 1 {
		return nil, ErrQuestionNotFound
	}

	return &questions[0], nil
}

// ListAll returns questions matching the filters, newest first.
func (r *Repo) ListAll(ctx context.Context, params ListParams) (_ []Question, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.questions.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("client_id", params.ClientID))
	span.SetAttributes(attribute.Bool("only_unanswered", params.OnlyUnanswered))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, client_id, title, body, answer, answered_at, created_at
			FROM question
				WHERE ($1::text = '' OR client_id = $1)
				AND ($2::boolean IS FALSE OR answer IS NULL)
			ORDER BY created_at DESC;`,
		params.ClientID, params.OnlyUnanswered,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	questions, err := r.rows2questions(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2questions: %w", err)
	}
	return questions, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.questions.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM question WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrQuestionNotFound
	}
	return nil
}

func (r *Repo) rows2questions(rows pgx.Rows) ([]Question, error) {
	var questions []Question
	for rows.Next() {
		var id int
		var clientID string
		var title string
		var body string
		var answer *string
		var answeredAt *time.Time
		var createdAt time.Time
		if err := rows.Scan(&id, &clientID, &title, &body, &answer, &answeredAt, &createdAt); err != nil {
			return nil, err
		}

		questions = append(questions, Question{
			ID:         id,
			ClientID:   clientID,
			Title:      title,
			Body:       body,
			Answer:     answer,
			AnsweredAt: answeredAt,
			CreatedAt:  createdAt,
		})
	}

	if questions == nil {
		questions = make([]Question, 0)
	}

	return questions, nil
}
