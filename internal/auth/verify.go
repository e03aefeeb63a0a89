package auth

import (
	"context"
	"fmt"
	"time"
)

const (
	verifyOTPTTL = 24 * time.Hour
	resetOTPTTL  = 15 * time.Minute
)

// SendVerificationCode generates a verification OTP for the account, stores
// it with a 24-hour expiry, and emails it. The code stays stored even when
// delivery fails, so the caller can retry by requesting a resend.
func (s *Service) SendVerificationCode(ctx context.Context, id string) error {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return ErrAlreadyVerified
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(verifyOTPTTL).UnixMilli()
	if err := s.store.SetVerifyOTP(ctx, id, code, expiresAt); err != nil {
		return err
	}

	subject := "Account Verification OTP"
	body := fmt.Sprintf("Dear %s,\n\nYour verification code is: %s\nIt is valid for 24 hours.\n\nRegards,\nThe Team", user.Name, code)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// VerifyAccount checks the submitted OTP against the stored one and marks
// the account verified on success. Codes are single-use: the stored code is
// cleared on success, and also when expiry is detected here.
func (s *Service) VerifyAccount(ctx context.Context, id, code string) error {
	if code == "" {
		return ErrMissingFields
	}
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.VerifyOTP == "" || user.VerifyOTP != code {
		return ErrInvalidCode
	}
	if s.now().UnixMilli() > user.VerifyOTPExpires {
		if err := s.store.ClearVerifyOTP(ctx, id); err != nil {
			return err
		}
		return ErrExpiredCode
	}
	return s.store.MarkVerified(ctx, id)
}

// RequestPasswordReset generates a reset OTP for the account matching the
// email, stores it with a 15-minute expiry, and emails it.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return ErrMissingFields
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := generateOTP()
	if err != nil {
		return err
	}
	expiresAt := s.now().Add(resetOTPTTL).UnixMilli()
	if err := s.store.SetResetOTP(ctx, user.ID.Hex(), code, expiresAt); err != nil {
		return err
	}

	subject := "Password Reset OTP"
	body := fmt.Sprintf("Dear %s,\n\nYour password reset code is: %s\nIt is valid for 15 minutes.\n\nRegards,\nThe Team", user.Name, code)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// ResetPassword replaces the stored hash with a hash of newPassword when
// the reset OTP is valid, and clears the code.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return ErrMissingFields
	}
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.ResetOTP == "" || user.ResetOTP != code {
		return ErrInvalidCode
	}
	id := user.ID.Hex()
	if s.now().UnixMilli() > user.ResetOTPExpires {
		if err := s.store.ClearResetOTP(ctx, id); err != nil {
			return err
		}
		return ErrExpiredCode
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.store.UpdatePassword(ctx, id, hash)
}
