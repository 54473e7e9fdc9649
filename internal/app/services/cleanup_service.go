package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// CleanupService periodically purges expired refresh tokens and password
// reset codes so revoked and stale credentials do not accumulate.
type CleanupService struct {
	tokenRepo TokenRepository
	otpRepo   OTPRepository
	interval  time.Duration
	logger    zerolog.Logger
}

// NewCleanupService creates a new CleanupService sweeping at the given
// interval.
func NewCleanupService(
	tokenRepo TokenRepository,
	otpRepo OTPRepository,
	interval time.Duration,
	logger zerolog.Logger,
) *CleanupService {
	return &CleanupService{
		tokenRepo: tokenRepo,
		otpRepo:   otpRepo,
		interval:  interval,
		logger:    logger,
	}
}

// Start launches the sweep loop in a goroutine. One sweep runs
// immediately, then every interval until the context is cancelled.
func (s *CleanupService) Start(ctx context.Context) {
	go func() {
		s.Sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("Credential cleanup stopped")
				return
			case <-ticker.C:
				s.Sweep(ctx)
			}
		}
	}()
}

// Sweep deletes expired refresh tokens and reset codes once. Errors are
// logged and not returned; the next tick retries.
func (s *CleanupService) Sweep(ctx context.Context) {
	now := time.Now()

	tokens, err := s.tokenRepo.DeleteExpiredTokens(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to purge expired refresh tokens")
	}

	otps, err := s.otpRepo.DeleteExpired(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to purge expired reset codes")
	}

	if tokens > 0 || otps > 0 {
		s.logger.Info().
			Int64("refreshTokens", tokens).
			Int64("resetCodes", otps).
			Msg("Expired credentials purged")
	}
}
