package repository

import (
	"context"
	"time"

	"recipefinder/internal/models"

	"gorm.io/gorm"
)

type VerificationRepository interface {
	CreateVerification(ctx context.Context, verification *models.Verification) error
	FindByEmailAndCode(ctx context.Context, email, code string) (*models.Verification, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type verificationRepository struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

func (vr *verificationRepository) CreateVerification(ctx context.Context, verification *models.Verification) error {
	return vr.db.WithContext(ctx).Create(verification).Error
}

// FindByEmailAndCode only matches codes that have not expired.
func (vr *verificationRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*models.Verification, error) {
	var verification models.Verification
	err := vr.db.WithContext(ctx).
		Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&verification).Error
	if err != nil {
		return nil, err
	}
	return &verification, nil
}

// DeleteByEmail hard-deletes so the unique email index can be reused.
func (vr *verificationRepository) DeleteByEmail(ctx context.Context, email string) error {
	return vr.db.WithContext(ctx).Unscoped().Where("email = ?", email).Delete(&models.Verification{}).Error
}
