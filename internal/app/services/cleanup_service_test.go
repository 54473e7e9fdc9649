package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSweep_PurgesTokensAndResetCodes(t *testing.T) {
	tokenRepo := &fakeTokenRepo{expiredDeleted: 4}
	otpRepo := newFakeOTPRepo()
	otpRepo.expiredDeleted = 2
	svc := NewCleanupService(tokenRepo, otpRepo, time.Hour, zerolog.Nop())

	svc.Sweep(context.Background())

	assert.Equal(t, 1, tokenRepo.deleteCalls)
	assert.Equal(t, 1, otpRepo.deleteCalls)
}

func TestSweep_TokenFailureStillPurgesResetCodes(t *testing.T) {
	tokenRepo := &fakeTokenRepo{deleteErr: errors.New("connection reset")}
	otpRepo := newFakeOTPRepo()
	svc := NewCleanupService(tokenRepo, otpRepo, time.Hour, zerolog.Nop())

	svc.Sweep(context.Background())

	assert.Equal(t, 1, otpRepo.deleteCalls)
}

// signalOTPRepo reports each sweep over a channel so the test can wait
// for the background goroutine without sharing counters across it.
type signalOTPRepo struct {
	OTPRepository
	swept chan struct{}
}

func (r *signalOTPRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	r.swept <- struct{}{}
	return 0, nil
}

func TestStart_SweepsImmediatelyAndStopsOnCancel(t *testing.T) {
	otpRepo := &signalOTPRepo{swept: make(chan struct{}, 1)}
	svc := NewCleanupService(&fakeTokenRepo{}, otpRepo, time.Hour, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	select {
	case <-otpRepo.swept:
	case <-time.After(time.Second):
		t.Fatal("expected an immediate sweep on start")
	}
}
