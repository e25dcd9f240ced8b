package services

import (
	"context"
	"math/rand"
	"strconv"

	"github.com/raflidev/go-fixmart/app/apperrors"
	"github.com/raflidev/go-fixmart/app/utils/cache"
)

// OTPService stores one-time codes in the cache keyed by email. The cache
// is the only source of truth for a code; expiry invalidates it.
type OTPService struct {
	cache  *cache.Cache
	mailer *Mailer
}

func NewOTPService(c *cache.Cache, mailer *Mailer) *OTPService {
	return &OTPService{cache: c, mailer: mailer}
}

// Issue generates a 6-digit code, stores it under the email with a 5-minute
// TTL and mails it.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	otpCode := strconv.Itoa(rand.Intn(900000) + 100000)

	if err := s.cache.Set(ctx, email, otpCode, otpTTL); err != nil {
		return apperrors.NewInternal(err)
	}

	htmlBody := BuildOTPEmailBody(otpCode, int(otpTTL.Minutes()))
	if err := s.mailer.SendHTMLEmail(email, "Your verification code", htmlBody); err != nil {
		return apperrors.NewInternal(err)
	}
	return nil
}

// Verify checks the submitted code and consumes it on success.
func (s *OTPService) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, ok, err := s.cache.Get(ctx, email)
	if err != nil {
		return false, apperrors.NewInternal(err)
	}
	if !ok || stored != code {
		return false, nil
	}

	if err := s.cache.Del(ctx, email); err != nil {
		return false, apperrors.NewInternal(err)
	}
	return true, nil
}
