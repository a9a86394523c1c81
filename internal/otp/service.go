package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/httperr"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

// ======================================================
// OTP VERIFICATION SERVICE
// ======================================================

const (
	TypeLogin        = "login"
	TypeRegistration = "registration"

	// SentinelUserID marks codes issued before a user row exists
	// (mid-registration).
	SentinelUserID uint = 0

	CodeLength = 6
	TTL        = 10 * time.Minute
)

var ErrTooManySends = httperr.ErrBusiness("otp_rate_limited")

type Repository interface {
	SaveCode(ctx context.Context, code *models.OTPCode) error

	// ConsumeCode deletes the matching non-expired code in a single
	// conditional statement and reports whether exactly one row was
	// consumed. Two concurrent verifications of the same code must not
	// both observe true.
	ConsumeCode(ctx context.Context, userID uint, code, otpType string, now time.Time) (bool, error)

	LogLoginSuccess(ctx context.Context, userID uint, code string) error

	SaveVerifiedEmail(ctx context.Context, userID uint, code, email string) error
}

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Limiter caps how often codes can be sent to one address.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type Service struct {
	repo    Repository
	mailer  Mailer
	limiter Limiter
	now     func() time.Time
}

func NewService(repo Repository, mailer Mailer, limiter Limiter) *Service {
	return &Service{
		repo:    repo,
		mailer:  mailer,
		limiter: limiter,
		now:     time.Now,
	}
}

// ======================================================
// OPERATIONS
// ======================================================

// Generate produces a fixed-length decimal code from a cryptographically
// secure source.
func Generate(length int) (string, error) {
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", err
		}
		buf[i] = byte('0' + n.Int64())
	}
	return string(buf), nil
}

// SendAndStore generates a code, delivers it by email and persists it with
// a ten-minute expiry. The code is stored only when delivery succeeds.
func (s *Service) SendAndStore(ctx context.Context, userID uint, email, otpType string) error {
	if s.limiter != nil {
		ok, err := s.limiter.Allow(ctx, "otp:send:"+email)
		if err == nil && !ok {
			return ErrTooManySends
		}
	}

	code, err := Generate(CodeLength)
	if err != nil {
		return err
	}

	body := fmt.Sprintf("Your OTP code is: %s. It expires in 10 minutes.", code)
	if err := s.mailer.Send(ctx, email, "Your OTP Code", body); err != nil {
		return err
	}

	rec := &models.OTPCode{
		UserID:    userID,
		Code:      code,
		Type:      otpType,
		ExpiresAt: s.now().Add(TTL),
	}
	if otpType == TypeRegistration {
		rec.Email = email
	}

	return s.repo.SaveCode(ctx, rec)
}

// Verify consumes a matching non-expired code. The result is a bare boolean:
// wrong, expired and unknown codes are indistinguishable to the caller.
//
// On success a login code for a real user appends one entry to the login
// log, and a registration code persists the verified address for the
// account-creation step. Failed attempts write nothing.
func (s *Service) Verify(ctx context.Context, userID uint, code, otpType, email string) (bool, error) {
	consumed, err := s.repo.ConsumeCode(ctx, userID, code, otpType, s.now())
	if err != nil {
		return false, err
	}
	if !consumed {
		return false, nil
	}

	if otpType == TypeLogin && userID != SentinelUserID {
		if err := s.repo.LogLoginSuccess(ctx, userID, code); err != nil {
			return false, err
		}
	}

	if otpType == TypeRegistration && email != "" {
		if err := s.repo.SaveVerifiedEmail(ctx, userID, code, email); err != nil {
			return false, err
		}
	}

	return true, nil
}
