package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/KoshakFSB/WCWD/internal/apperrors"
	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/models"
	"go.uber.org/zap"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByLogin(ctx context.Context, login string) (*models.User, error)
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	CreditBalance(ctx context.Context, userID int64, amount float64) error
	AttachReferrer(ctx context.Context, userID, referrerID int64, bonus float64) error
	AddWarning(ctx context.Context, userID int64) (int, error)
	UpdateLevel(ctx context.Context, userID int64, level int) error
	GetReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error)
	GetPlatformStats(ctx context.Context) (*models.PlatformStats, error)
}

type userRepo struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *models.User) error {
	existing, err := r.GetUserByLogin(ctx, user.Login)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	query := `INSERT INTO users (login, password_hash, referral_source) VALUES ($1, $2, $3) RETURNING user_id`
	return r.db.QueryRowContext(ctx, query, user.Login, user.Password, user.ReferralSource).Scan(&user.ID)
}

const userColumns = `user_id, login, password_hash, referral_source, balance_usd, level, warnings,
		whatsapp_numbers, max_numbers, sms_messages, total_earned_usd, referrer_id, created_at`

func (r *userRepo) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Login, &user.Password, &user.ReferralSource, &user.BalanceUSD,
		&user.Level, &user.Warnings, &user.WhatsappCount, &user.MaxCount, &user.SmsCount,
		&user.TotalEarnedUSD, &user.ReferrerID, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetUserByLogin(ctx context.Context, login string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE login=$1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, login))
}

func (r *userRepo) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id=$1`
	return r.scanUser(r.db.QueryRowContext(ctx, query, userID))
}

func (r *userRepo) CreditBalance(ctx context.Context, userID int64, amount float64) error {
	query := `
		UPDATE users
		SET balance_usd = balance_usd + $1
		WHERE user_id = $2
	`
	_, err := r.db.ExecContext(ctx, query, amount, userID)
	return err
}

// AttachReferrer sets the referrer once, records the referral and credits the
// flat registration bonus in a single transaction.
func (r *userRepo) AttachReferrer(ctx context.Context, userID, referrerID int64, bonus float64) error {
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
		UPDATE users SET referrer_id = $1 WHERE user_id = $2 AND referrer_id IS NULL
	`, referrerID, userID)
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
		INSERT INTO referrals (referrer_id, referred_id) VALUES ($1, $2)
	`, referrerID, userID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE users SET balance_usd = balance_usd + $1 WHERE user_id = $2
	`, bonus, referrerID)
	if err != nil {
		return err
	}

	err = tx.Commit()
	return err
}

func (r *userRepo) AddWarning(ctx context.Context, userID int64) (int, error) {
	var warnings int
	query := `UPDATE users SET warnings = warnings + 1 WHERE user_id = $1 RETURNING warnings`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&warnings)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, apperrors.ErrUserNotFound
	}
	return warnings, err
}

func (r *userRepo) UpdateLevel(ctx context.Context, userID int64, level int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE users SET level = $1 WHERE user_id = $2`, level, userID)
	return err
}

func (r *userRepo) GetPlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM accounts WHERE status = 'active'),
			(SELECT COUNT(*) FROM withdraw_requests WHERE status = 'pending'),
			(SELECT COALESCE(SUM(amount_usd), 0) FROM withdraw_requests WHERE status = 'paid')
	`

	var stats models.PlatformStats
	err := r.db.QueryRowContext(ctx, query).Scan(&stats.TotalUsers, &stats.ActiveAccounts,
		&stats.PendingWithdrawals, &stats.TotalPaidUSD)
	if err != nil {
		logger.Log.Error("failed to query platform stats", zap.Error(err))
		return nil, err
	}
	return &stats, nil
}

func (r *userRepo) GetReferrals(ctx context.Context, referrerID int64) ([]models.Referral, error) {
	query := `SELECT id, referrer_id, referred_id, created_at FROM referrals
			  WHERE referrer_id=$1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, referrerID)
	if err != nil {
		logger.Log.Error("failed to query referrals", zap.Error(err))
		return nil, err
	}
	defer func(rows *sql.Rows) {
		if err := rows.Close(); err != nil {
			logger.Log.Error("failed to close rows", zap.Error(err))
		}
	}(rows)

	var referrals []models.Referral
	for rows.Next() {
		var ref models.Referral
		if err := rows.Scan(&ref.ID, &ref.ReferrerID, &ref.ReferredID, &ref.CreatedAt); err != nil {
			logger.Log.Error("failed to scan referral", zap.Error(err))
			return nil, err
		}
		referrals = append(referrals, ref)
	}
	return referrals, rows.Err()
}
