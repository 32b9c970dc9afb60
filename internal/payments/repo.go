package payments

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

var ErrBankAccountNotFound = errors.New("bank account not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// GetPaytrSettings returns the gateway settings, or zero-value settings
// if they were never saved.
func (r *Repo) GetPaytrSettings(ctx context.Context) (_ *PaytrSettings, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.payments.getpaytr")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				merchant_id, merchant_key, merchant_salt, test_mode, enabled, updated_at
			FROM paytr_settings
			WHERE id = 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	settings := DefaultPaytrSettings()
	if rows.Next() {
		if err := rows.Scan(
			&settings.MerchantID, &settings.MerchantKey, &settings.MerchantSalt,
			&settings.TestMode, &settings.Enabled, &settings.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
	}

	return settings, nil
}

// SavePaytrSettings overwrites the single settings row.
func (r *Repo) SavePaytrSettings(ctx context.Context, settings PaytrSettings) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.payments.savepaytr")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO paytr_settings
				(id, merchant_id, merchant_key, merchant_salt, test_mode, enabled, updated_at)
				VALUES (1, $1, $2, $3, $4, $5, $6)
			ON CONFLICT (id) DO UPDATE SET
				merchant_id = EXCLUDED.merchant_id,
				merchant_key = EXCLUDED.merchant_key,
				merchant_salt = EXCLUDED.merchant_salt,
				test_mode = EXCLUDED.test_mode,
				enabled = EXCLUDED.enabled,
				updated_at = EXCLUDED.updated_at;`,
		settings.MerchantID, settings.MerchantKey, settings.MerchantSalt,
		settings.TestMode, settings.Enabled, time.Now(),
	)
	return err
}

func (r *Repo) AddBankAccount(ctx context.Context, account BankAccount) (_ *BankAccount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.payments.addbankaccount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	now := time.Now()
	rows, err := r.db.Query(
		ctx,
		`INSERT INTO bank_account
				(bank_name, account_holder, iban, currency, active, created_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id;`,
		account.BankName, account.AccountHolder, account.IBAN, account.Currency, account.Active, now,
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

	span.SetAttributes(attribute.Int("bank_account.id", id))

	account.ID = id
	account.CreatedAt = now
	return &account, nil
}

// ListBankAccounts returns accounts, optionally only the active ones.
func (r *Repo) ListBankAccounts(ctx context.Context, onlyActive bool) (_ []BankAccount, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.payments.listbankaccounts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Bool("only_active", onlyActive))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, bank_name, account_holder, iban, currency, active, created_at
			FROM bank_account
				WHERE ($1::boolean IS FALSE OR active)
			ORDER BY created_at DESC;`,
		onlyActive,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	accounts, err := r.rows2accounts(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2accounts: %w", err)
	}
	return accounts, nil
}

func (r *Repo) DeleteBankAccount(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.payments.deletebankaccount")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM bank_account WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBankAccountNotFound
	}
	return nil
}

func (r *Repo) rows2accounts(rows pgx.Rows) ([]BankAccount, error) {
	var accounts []BankAccount
	for rows.Next() {
		var a BankAccount
		if err := rows.Scan(
			&a.ID, &a.BankName, &a.AccountHolder, &a.IBAN, &a.Currency, &a.Active, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}

	if accounts == nil {
		accounts = make([]BankAccount, 0)
	}

	return accounts, nil
}
