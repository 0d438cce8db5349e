package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetByUser(ctx context.Context, userID int64, service models.Service) ([]models.Account, error)
	ListByStatus(ctx context.Context, service models.Service, status string) ([]models.Account, error)
	ClaimPending(ctx context.Context, id, adminID int64) error
	MarkCodeSent(ctx context.Context, id, adminID int64, codeText string) error
	RecordUserCode(ctx context.Context, id int64, code string) error
	MarkEntered(ctx context.Context, id int64) error
	ActivateHold(ctx context.Context, id int64, start time.Time) error
	MarkFailed(ctx context.Context, id int64, failedAt time.Time) error
	Delete(ctx context.Context, id int64) error
	GetDueHolds(ctx context.Context, now time.Time) ([]models.Account, error)
	Complete(ctx context.Context, account *models.Account) error
}

type accountRepo struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) AccountRepository {
	return &accountRepo{db: db}
}

const accountColumns = `id, user_id, phone, service, status, admin_id, hold_start, hold_hours,
		amount_usd, code_text, code_sent, code_entered, created_at, failed_at`

func (r *accountRepo) Create(ctx context.Context, account *models.Account) error {
	query := `INSERT INTO accounts (user_id, phone, service, status, hold_hours, amount_usd)
			  VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query,
		account.UserID, account.Phone, account.Service, account.Status,
		account.HoldHours, account.AmountUSD).Scan(&account.ID, &account.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return apperrors.ErrDuplicatePhone
	}
	return err
}

func (r *accountRepo) scanAccount(row *sql.Row) (*models.Account, error) {
	var acc models.Account
	err := row.Scan(&acc.ID, &acc.UserID, &acc.Phone, &acc.Service, &acc.Status, &acc.AdminID,
		&acc.HoldStart, &acc.HoldHours, &acc.AmountUSD, &acc.CodeText, &acc.CodeSent,
		&acc.CodeEntered, &acc.CreatedAt, &acc.FailedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acc, nil
}

func (r *accountRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id=$1`
	return r.scanAccount(r.db.QueryRowContext(ctx, query, id))
}

func (r *accountRepo) queryAccounts(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query accounts", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var accounts []models.Account
	for rows.Next() {
		var acc models.Account
		err := rows.Scan(&acc.ID, &acc.UserID, &acc.Phone, &acc.Service, &acc.Status, &acc.AdminID,
			&acc.HoldStart, &acc.HoldHours, &acc.AmountUSD, &acc.CodeText, &acc.CodeSent,
			&acc.CodeEntered, &acc.CreatedAt, &acc.FailedAt)
		if err != nil {
			logger.Log.Error("failed to scan account row", zap.Error(err))
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	return accounts, rows.Err()
}

func (r *accountRepo) GetByUser(ctx context.Context, userID int64, service models.Service) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
			  WHERE user_id=$1 AND service=$2 ORDER BY created_at DESC`
	return r.queryAccounts(ctx, query, userID, service)
}

func (r *accountRepo) ListByStatus(ctx context.Context, service models.Service, status string) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
			  WHERE service=$1 AND status=$2 ORDER BY created_at`
	return r.queryAccounts(ctx, query, service, status)
}

// execConditional runs a guarded update and converts a zero row count into
// ErrStaleState so racing callers observe the lost transition.
func (r *accountRepo) execConditional(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrStaleState
	}
	return nil
}

func (r *accountRepo) ClaimPending(ctx context.Context, id, adminID int64) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET status=$1, admin_id=$2
		WHERE id=$3 AND status=$4 AND admin_id IS NULL
	`, models.AccountStatusAccepted, adminID, id, models.AccountStatusPending)
}

func (r *accountRepo) MarkCodeSent(ctx context.Context, id, adminID int64, codeText string) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET code_sent=TRUE, code_text=$1, admin_id=COALESCE(admin_id, $2)
		WHERE id=$3 AND status IN ($4, $5) AND code_sent=FALSE
	`, codeText, adminID, id, models.AccountStatusPending, models.AccountStatusAccepted)
}

func (r *accountRepo) RecordUserCode(ctx context.Context, id int64, code string) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET code_text=$1, code_entered=TRUE
		WHERE id=$2 AND status=$3 AND code_entered=FALSE
	`, code, id, models.AccountStatusAccepted)
}

func (r *accountRepo) MarkEntered(ctx context.Context, id int64) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET code_entered=TRUE, status=$1
		WHERE id=$2 AND status=$3 AND code_sent=TRUE
	`, models.AccountStatusConfirmed, id, models.AccountStatusPending)
}

func (r *accountRepo) ActivateHold(ctx context.Context, id int64, start time.Time) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET status=$1, hold_start=$2
		WHERE id=$3 AND hold_start IS NULL
		  AND (status=$4 OR (status=$5 AND code_entered=TRUE))
	`, models.AccountStatusActive, start, id, models.AccountStatusConfirmed, models.AccountStatusAccepted)
}

func (r *accountRepo) MarkFailed(ctx context.Context, id int64, failedAt time.Time) error {
	return r.execConditional(ctx, `
		UPDATE accounts SET status=$1, failed_at=$2
		WHERE id=$3 AND status=$4
	`, models.AccountStatusFailed, failedAt, id, models.AccountStatusActive)
}

func (r *accountRepo) Delete(ctx context.Context, id int64) error {
	return r.execConditional(ctx, `
		DELETE FROM accounts WHERE id=$1 AND status NOT IN ($2, $3)
	`, id, models.AccountStatusCompleted, models.AccountStatusFailed)
}

func (r *accountRepo) GetDueHolds(ctx context.Context, now time.Time) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
			  WHERE status=$1
			    AND hold_start IS NOT NULL
			    AND ((service=$2 AND hold_start + interval '15 minutes' <= $4)
			      OR (service=$3 AND hold_start + make_interval(hours => hold_hours) <= $4))
			  ORDER BY hold_start`
	return r.queryAccounts(ctx, query, models.AccountStatusActive, models.ServiceMax, models.ServiceWhatsapp, now)
}

// Complete moves the account into its terminal credited state. The status
// transition and the owner's balance credit commit together, and the
// conditional update makes the credit happen at most once.
func (r *accountRepo) Complete(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Log.Error("rollback error", zap.Error(rbErr))
			}
		}
	}()

	res, err := tx.ExecContext(ctx, `
		UPDATE accounts SET status=$1 WHERE id=$2 AND status=$3
	`, models.AccountStatusCompleted, account.ID, models.AccountStatusActive)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = apperrors.ErrStaleState
		return err
	}

	counter := "whatsapp_numbers"
	if account.Service == models.ServiceMax {
		counter = "max_numbers"
	}
	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET balance_usd = balance_usd + $1,
		    total_earned_usd = total_earned_usd + $1,
		    `+counter+` = `+counter+` + 1
		WHERE user_id = $2
	`, account.AmountUSD, account.UserID)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}
