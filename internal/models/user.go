package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a registered account.
//
// OTP codes are empty strings when unused and their expiries are zero epoch
// milliseconds; a code is valid only while it is non-empty and the current
// time is before its expiry. Codes are cleared once consumed or expired.
type User struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	Email            string             `bson:"email"`
	PasswordHash     string             `bson:"password_hash"`
	IsVerified       bool               `bson:"is_verified"`
	VerifyOTP        string             `bson:"verify_otp,omitempty"`
	VerifyOTPExpires int64              `bson:"verify_otp_expires,omitempty"`
	ResetOTP         string             `bson:"reset_otp,omitempty"`
	ResetOTPExpires  int64              `bson:"reset_otp_expires,omitempty"`
}
