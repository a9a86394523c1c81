package otp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	codes     []models.OTPCode
	nextID    uint
	loginLogs []models.OTPLoginLog
	verified  []models.VerifiedEmail
}

func (r *fakeRepo) SaveCode(ctx context.Context, code *models.OTPCode) error {
	r.nextID++
	code.ID = r.nextID
	r.codes = append(r.codes, *code)
	return nil
}

func (r *fakeRepo) ConsumeCode(ctx context.Context, userID uint, code, otpType string, now time.Time) (bool, error) {
	for i, rec := range r.codes {
		if rec.UserID == userID && rec.Code == code && rec.Type == otpType && rec.ExpiresAt.After(now) {
			r.codes = append(r.codes[:i], r.codes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) LogLoginSuccess(ctx context.Context, userID uint, code string) error {
	r.loginLogs = append(r.loginLogs, models.OTPLoginLog{UserID: userID, Code: code, Status: "success"})
	return nil
}

func (r *fakeRepo) SaveVerifiedEmail(ctx context.Context, userID uint, code, email string) error {
	r.verified = append(r.verified, models.VerifiedEmail{UserID: userID, Code: code, Email: email})
	return nil
}

type fakeMailer struct {
	sent []string
	fail bool
}

func (m *fakeMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.sent = append(m.sent, to)
	return nil
}

type fakeLimiter struct {
	allow bool
}

func (l *fakeLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.allow, nil
}

func newTestService(repo *fakeRepo, m *fakeMailer) *Service {
	s := NewService(repo, m, nil)
	s.now = func() time.Time {
		return time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	}
	return s
}

func seedCode(repo *fakeRepo, userID uint, code, otpType string, expiresAt time.Time) {
	repo.nextID++
	repo.codes = append(repo.codes, models.OTPCode{
		ID:        repo.nextID,
		UserID:    userID,
		Code:      code,
		Type:      otpType,
		ExpiresAt: expiresAt,
	})
}

// ======================================================
// GENERATE
// ======================================================

func TestGenerate(t *testing.T) {
	code, err := Generate(CodeLength)
	require.NoError(t, err)
	assert.Len(t, code, CodeLength)

	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "non-digit %q in %q", r, code)
	}
}

// ======================================================
// SEND AND STORE
// ======================================================

func TestSendAndStorePersistsOnDeliverySuccess(t *testing.T) {
	repo := &fakeRepo{}
	m := &fakeMailer{}
	s := newTestService(repo, m)

	err := s.SendAndStore(context.Background(), 7, "owner@example.com", TypeLogin)
	require.NoError(t, err)

	require.Len(t, repo.codes, 1)
	rec := repo.codes[0]
	assert.Equal(t, uint(7), rec.UserID)
	assert.Equal(t, TypeLogin, rec.Type)
	assert.Len(t, rec.Code, CodeLength)
	assert.Empty(t, rec.Email, "login codes carry no email")
	assert.Equal(t, s.now().Add(TTL), rec.ExpiresAt)

	assert.Equal(t, []string{"owner@example.com"}, m.sent)
}

func TestSendAndStoreKeepsRegistrationEmail(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})

	err := s.SendAndStore(context.Background(), SentinelUserID, "new@example.com", TypeRegistration)
	require.NoError(t, err)

	require.Len(t, repo.codes, 1)
	assert.Equal(t, SentinelUserID, repo.codes[0].UserID)
	assert.Equal(t, "new@example.com", repo.codes[0].Email)
}

func TestSendAndStoreNothingStoredOnDeliveryFailure(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{fail: true})

	err := s.SendAndStore(context.Background(), 7, "owner@example.com", TypeLogin)
	assert.Error(t, err)
	assert.Empty(t, repo.codes)
}

func TestSendAndStoreRateLimited(t *testing.T) {
	repo := &fakeRepo{}
	m := &fakeMailer{}
	s := NewService(repo, m, &fakeLimiter{allow: false})

	err := s.SendAndStore(context.Background(), 7, "owner@example.com", TypeLogin)
	assert.ErrorIs(t, err, ErrTooManySends)
	assert.Empty(t, m.sent)
	assert.Empty(t, repo.codes)
}

// ======================================================
// VERIFY
// ======================================================

func TestVerifyIsSingleUse(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, 7, "123456", TypeLogin, s.now().Add(TTL))

	ok, err := s.Verify(context.Background(), 7, "123456", TypeLogin, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, repo.codes, "code is consumed on success")
	require.Len(t, repo.loginLogs, 1)
	assert.Equal(t, uint(7), repo.loginLogs[0].UserID)
	assert.Equal(t, "success", repo.loginLogs[0].Status)

	ok, err = s.Verify(context.Background(), 7, "123456", TypeLogin, "")
	require.NoError(t, err)
	assert.False(t, ok, "a consumed code never verifies again")
	assert.Len(t, repo.loginLogs, 1, "failed attempts write nothing")
}

func TestVerifyExpiredCode(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, 7, "123456", TypeLogin, s.now().Add(-time.Minute))

	ok, err := s.Verify(context.Background(), 7, "123456", TypeLogin, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, repo.loginLogs)
	assert.Len(t, repo.codes, 1, "expired codes are not proactively deleted")
}

func TestVerifyWrongCodeWritesNothing(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, 7, "123456", TypeLogin, s.now().Add(TTL))

	ok, err := s.Verify(context.Background(), 7, "654321", TypeLogin, "")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, repo.loginLogs)
	assert.Len(t, repo.codes, 1, "a failed attempt leaves the code attemptable")
}

func TestVerifyTypeMustMatch(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, 7, "123456", TypeLogin, s.now().Add(TTL))

	ok, err := s.Verify(context.Background(), 7, "123456", TypeRegistration, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyRegistrationStoresVerifiedEmail(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, SentinelUserID, "987654", TypeRegistration, s.now().Add(TTL))

	ok, err := s.Verify(context.Background(), SentinelUserID, "987654", TypeRegistration, "new@example.com")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, repo.verified, 1)
	assert.Equal(t, "new@example.com", repo.verified[0].Email)
	assert.Empty(t, repo.loginLogs, "registration verifications never hit the login log")
}

func TestVerifyLoginForSentinelUserNotLogged(t *testing.T) {
	repo := &fakeRepo{}
	s := newTestService(repo, &fakeMailer{})
	seedCode(repo, SentinelUserID, "111222", TypeLogin, s.now().Add(TTL))

	ok, err := s.Verify(context.Background(), SentinelUserID, "111222", TypeLogin, "")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, repo.loginLogs)
}
