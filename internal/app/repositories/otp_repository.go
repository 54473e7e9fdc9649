package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nepedu/resulthub/internal/app/models"
	"github.com/nepedu/resulthub/internal/db"
	"github.com/nepedu/resulthub/internal/pkg/apperrors"
)

// OTPRepository handles password reset codes. At most one active code
// exists per email, enforced by replacing on issue.
type OTPRepository struct {
	db    *pgxpool.Pool
	store *db.PostgresDB
}

// NewOTPRepository creates a new OTP repository.
func NewOTPRepository(store *db.PostgresDB) *OTPRepository {
	return &OTPRepository{
		db:    store.Pool,
		store: store,
	}
}

// ReplaceForEmail deletes any existing code for the email and stores the
// new one, in a single transaction.
func (r *OTPRepository) ReplaceForEmail(ctx context.Context, otp *models.OTP) error {
	return r.store.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM password_reset_otps WHERE email = $1`, otp.Email); err != nil {
			return fmt.Errorf("error clearing previous reset code: %w", err)
		}

		if err := tx.QueryRow(ctx,
			`INSERT INTO password_reset_otps (email, code, attempts, expires_at)
			VALUES ($1, $2, 0, $3)
			RETURNING id, created_at`,
			otp.Email, otp.Code, otp.ExpiresAt).Scan(&otp.ID, &otp.CreatedAt); err != nil {
			return fmt.Errorf("error storing reset code: %w", err)
		}

		return nil
	})
}

// GetByEmail retrieves the active reset code for an email.
func (r *OTPRepository) GetByEmail(ctx context.Context, email string) (*models.OTP, error) {
	query := `
		SELECT id, email, code, attempts, expires_at, created_at
		FROM password_reset_otps
		WHERE email = $1
	`

	var otp models.OTP
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.ID, &otp.Email, &otp.Code, &otp.Attempts, &otp.ExpiresAt, &otp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOTPNotFound
		}
		return nil, fmt.Errorf("error retrieving reset code: %w", err)
	}

	return &otp, nil
}

// IncrementAttempts records a failed verification and returns the new count.
func (r *OTPRepository) IncrementAttempts(ctx context.Context, id int64) (int, error) {
	var attempts int
	err := r.db.QueryRow(ctx,
		`UPDATE password_reset_otps SET attempts = attempts + 1 WHERE id = $1 RETURNING attempts`,
		id).Scan(&attempts)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrOTPNotFound
		}
		return 0, fmt.Errorf("error recording failed attempt: %w", err)
	}

	return attempts, nil
}

// DeleteByEmail removes the reset code for an email, after a successful
// reset or when invalidating.
func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	if _, err := r.db.Exec(ctx,
		`DELETE FROM password_reset_otps WHERE email = $1`, email); err != nil {
		return fmt.Errorf("error deleting reset code: %w", err)
	}

	return nil
}

// DeleteExpired purges codes past their expiry, used by periodic cleanup.
func (r *OTPRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	cmdTag, err := r.db.Exec(ctx,
		`DELETE FROM password_reset_otps WHERE expires_at < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("error purging expired reset codes: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}
