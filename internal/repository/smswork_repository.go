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

type SmsWorkRepository interface {
	Create(ctx context.Context, work *models.SmsWork) error
	GetByID(ctx context.Context, id int64) (*models.SmsWork, error)
	GetByUser(ctx context.Context, userID int64) ([]models.SmsWork, error)
	ListByStatus(ctx context.Context, status string) ([]models.SmsWork, error)
	Accept(ctx context.Context, id, adminID int64, workMessage string, processedAt time.Time) error
	AttachProof(ctx context.Context, id int64, proofRef string) error
	Complete(ctx context.Context, work *models.SmsWork) error
}

type smsWorkRepo struct {
	db *sql.DB
}

func NewSmsWorkRepository(db *sql.DB) SmsWorkRepository {
	return &smsWorkRepo{db: db}
}

const smsWorkColumns = `id, user_id, admin_id, text, work_message, proof_ref, amount_usd,
		status, created_at, processed_at, completed_at`

func (r *smsWorkRepo) Create(ctx context.Context, work *models.SmsWork) error {
	query := `INSERT INTO sms_works (user_id, text, amount_usd, status)
			  VALUES ($1, $2, $3, $4) RETURNING id, created_at`
	return r.db.QueryRowContext(ctx, query,
		work.UserID, work.Text, work.AmountUSD, work.Status).Scan(&work.ID, &work.CreatedAt)
}

func (r *smsWorkRepo) GetByID(ctx context.Context, id int64) (*models.SmsWork, error) {
	query := `SELECT ` + smsWorkColumns + ` FROM sms_works WHERE id=$1`
	var w models.SmsWork
	err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.UserID, &w.AdminID, &w.Text,
		&w.WorkMessage, &w.ProofRef, &w.AmountUSD, &w.Status, &w.CreatedAt, &w.ProcessedAt, &w.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrSmsWorkNotFound
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *smsWorkRepo) queryWorks(ctx context.Context, query string, args ...any) ([]models.SmsWork, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Log.Error("failed to query sms works", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var works []models.SmsWork
	for rows.Next() {
		var w models.SmsWork
		err := rows.Scan(&w.ID, &w.UserID, &w.AdminID, &w.Text, &w.WorkMessage, &w.ProofRef,
			&w.AmountUSD, &w.Status, &w.CreatedAt, &w.ProcessedAt, &w.CompletedAt)
		if err != nil {
			logger.Log.Error("failed to scan sms work", zap.Error(err))
			return nil, err
		}
		works = append(works, w)
	}
	return works, rows.Err()
}

func (r *smsWorkRepo) GetByUser(ctx context.Context, userID int64) ([]models.SmsWork, error) {
	query := `SELECT ` + smsWorkColumns + ` FROM sms_works WHERE user_id=$1 ORDER BY created_at DESC`
	return r.queryWorks(ctx, query, userID)
}

func (r *smsWorkRepo) ListByStatus(ctx context.Context, status string) ([]models.SmsWork, error) {
	query := `SELECT ` + smsWorkColumns + ` FROM sms_works WHERE status=$1 ORDER BY created_at`
	return r.queryWorks(ctx, query, status)
}

func (r *smsWorkRepo) execConditional(ctx context.Context, query string, args ...any) error {
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

func (r *smsWorkRepo) Accept(ctx context.Context, id, adminID int64, workMessage string, processedAt time.Time) error {
	return r.execConditional(ctx, `
		UPDATE sms_works SET status=$1, admin_id=$2, work_message=$3, processed_at=$4
		WHERE id=$5 AND status=$6
	`, models.SmsWorkStatusAccepted, adminID, workMessage, processedAt, id, models.SmsWorkStatusPending)
}

func (r *smsWorkRepo) AttachProof(ctx context.Context, id int64, proofRef string) error {
	return r.execConditional(ctx, `
		UPDATE sms_works SET status=$1, proof_ref=$2
		WHERE id=$3 AND status=$4
	`, models.SmsWorkStatusProofPending, proofRef, id, models.SmsWorkStatusAccepted)
}

// Complete credits the reward together with the terminal transition, so the
// credit is applied exactly once even under concurrent admin actions.
func (r *smsWorkRepo) Complete(ctx context.Context, work *models.SmsWork) error {
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
		UPDATE sms_works SET status=$1, completed_at=now()
		WHERE id=$2 AND status=$3
	`, models.SmsWorkStatusCompleted, work.ID, models.SmsWorkStatusProofPending)
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

	_, err = tx.ExecContext(ctx, `
		UPDATE users
		SET balance_usd = balance_usd + $1,
		    total_earned_usd = total_earned_usd + $1,
		    sms_messages = sms_messages + 1
		WHERE user_id = $2
	`, work.AmountUSD, work.UserID)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}
