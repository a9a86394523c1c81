package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/models"
	"github.com/DeQuirozJanPaul200408/Happy-Paws-Vet-Clinic/internal/otp"
)

type OTPGormRepository struct {
	db *gorm.DB
}

func NewOTPGormRepository(db *gorm.DB) *OTPGormRepository {
	return &OTPGormRepository{db: db}
}

func (r *OTPGormRepository) SaveCode(
	ctx context.Context,
	code *models.OTPCode,
) error {
	return r.db.WithContext(ctx).Create(code).Error
}

// ConsumeCode issues a single conditional DELETE, so concurrent
// verifications of the same code race on one row and at most one caller
// sees it consumed.
func (r *OTPGormRepository) ConsumeCode(
	ctx context.Context,
	userID uint,
	code string,
	otpType string,
	now time.Time,
) (bool, error) {

	res := r.db.WithContext(ctx).
		Where(
			"user_id = ? AND code = ? AND type = ? AND expires_at > ?",
			userID, code, otpType, now,
		).
		Delete(&models.OTPCode{})

	if res.Error != nil {
		return false, res.Error
	}

	return res.RowsAffected > 0, nil
}

func (r *OTPGormRepository) LogLoginSuccess(
	ctx context.Context,
	userID uint,
	code string,
) error {
	return r.db.WithContext(ctx).Create(&models.OTPLoginLog{
		UserID: userID,
		Code:   code,
		Status: "success",
	}).Error
}

func (r *OTPGormRepository) SaveVerifiedEmail(
	ctx context.Context,
	userID uint,
	code string,
	email string,
) error {
	return r.db.WithContext(ctx).Create(&models.VerifiedEmail{
		UserID: userID,
		Code:   code,
		Email:  email,
	}).Error
}

// Compile-time check
var _ otp.Repository = (*OTPGormRepository)(nil)
