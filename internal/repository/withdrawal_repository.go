package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"go.uber.org/zap"
)

type WithdrawalRepository interface {
	CreateWithDebit(ctx context.Context, withdrawal *models.WithdrawRequest) error
	GetByID(ctx context.Context, id int64) (*models.WithdrawRequest, error)
	GetByUser(ctx context.Context, userID int64) ([]models.WithdrawRequest, error)
	GetDuePending(ctx context.Context, cutoff time.Time) ([]models.WithdrawRequest, error)
	Confirm(ctx context.Context, id int64, confirmedAt time.Time) error
	GetConfirmedUnpaid(ctx context.Context, limit int) ([]models.WithdrawRequest, error)
	MarkPaid(ctx context.Context, id int64, invoiceID, invoiceURL string, paidAt time.Time) error
}

type withdrawalRepo struct {
	db *sql.DB
}

func NewWithdrawalRepository(db *sql.DB) WithdrawalRepository {
	return &withdrawalRepo{db: db}
}

const withdrawalColumns = `id, user_id, amount_usd, status, invoice_id, invoice_url,
		created_at, confirmed_at, paid_at`

// CreateWithDebit debits the balance and creates the pending request in one
// transaction. The amount is never debited again later in the pipeline.
func (r *withdrawalRepo) CreateWithDebit(ctx context.Context, withdrawal *models.WithdrawRequest) error {
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
		UPDATE users
		SET balance_usd = balance_usd - $1
		WHERE user_id = $2 AND balance_usd >= $1
	`, withdrawal.AmountUSD, withdrawal.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		err = apperrors.ErrInsufficientBalance
		return err
	}

	err = tx.QueryRowContext(ctx, `
		INSERT INTO withdraw_requests (user_id, amount_usd, status)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, withdrawal.UserID, withdrawal.AmountUSD, models.WithdrawStatusPending).
		Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *withdrawalRepo) scanWithdrawal(row *sql.Row) (*models.WithdrawRequest, error) {
	var w models.WithdrawRequest
	err := row.Scan(&w.ID, &w.UserID, &w.AmountUSD, &w.Status, &w.InvoiceID, &w.InvoiceURL,
		&w.CreatedAt, &w.ConfirmedAt, &w.PaidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrWithdrawalNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *withdrawalRepo) GetByID(ctx context.Context, id int64) (*models.WithdrawRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdraw_requests WHERE id=$1`
	return r.scanWithdrawal(r.db.QueryRowContext(ctx, query, id))
}

func (r *withdrawalRepo) queryWithdrawals(ctx context.Context, query string, args ...any) ([]models.WithdrawRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query withdrawals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var withdrawals []models.WithdrawRequest
	for rows.Next() {
		var w models.WithdrawRequest
		err := rows.Scan(&w.ID, &w.UserID, &w.AmountUSD, &w.Status, &w.InvoiceID, &w.InvoiceURL,
			&w.CreatedAt, &w.ConfirmedAt, &w.PaidAt)
		if err != nil {
			logger.Log.Error("failed to scan withdrawal", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, rows.Err()
}

func (r *withdrawalRepo) GetByUser(ctx context.Context, userID int64) ([]models.WithdrawRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdraw_requests
			  WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryWithdrawals(ctx, query, userID)
}

func (r *withdrawalRepo) GetDuePending(ctx context.Context, cutoff time.Time) ([]models.WithdrawRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdraw_requests
			  WHERE status=$1 AND created_at <= $2 ORDER BY created_at`
	return r.queryWithdrawals(ctx, query, models.WithdrawStatusPending, cutoff)
}

func (r *withdrawalRepo) Confirm(ctx context.Context, id int64, confirmedAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdraw_requests SET status=$1, confirmed_at=$2
		WHERE id=$3 AND status=$4
	`, models.WithdrawStatusConfirmed, confirmedAt, id, models.WithdrawStatusPending)
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

func (r *withdrawalRepo) GetConfirmedUnpaid(ctx context.Context, limit int) ([]models.WithdrawRequest, error) {
	query := `SELECT ` + withdrawalColumns + ` FROM withdraw_requests
			  WHERE status=$1 AND invoice_id IS NULL ORDER BY created_at LIMIT $2`
	return r.queryWithdrawals(ctx, query, models.WithdrawStatusConfirmed, limit)
}

func (r *withdrawalRepo) MarkPaid(ctx context.Context, id int64, invoiceID, invoiceURL string, paidAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE withdraw_requests SET status=$1, invoice_id=$2, invoice_url=$3, paid_at=$4
		WHERE id=$5 AND status=$6
	`, models.WithdrawStatusPaid, invoiceID, invoiceURL, paidAt, id, models.WithdrawStatusConfirmed)
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
