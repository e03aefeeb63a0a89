// Package store provides the MongoDB-backed persistence layer for accounts.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"mailauth/internal/auth"
	"mailauth/internal/models"
)

// Users wraps the users collection and implements auth.Store.
type Users struct {
	col *mongo.Collection
}

// NewUsers returns a Users store over the given collection.
func NewUsers(col *mongo.Collection) *Users {
	return &Users{col: col}
}

// Insert stores a new account and returns its id. A duplicate email is
// reported as auth.ErrAccountExists via the unique index.
func (s *Users) Insert(ctx context.Context, user *models.User) (string, error) {
	res, err := s.col.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", auth.ErrAccountExists
		}
		return "", fmt.Errorf("error inserting user: %v", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id.Hex(), nil
}

// FindByEmail retrieves the account with the given email.
func (s *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %v", err)
	}
	return &user, nil
}

// FindByID retrieves the account with the given hex object id.
func (s *Users) FindByID(ctx context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrAccountNotFound
	}
	var user models.User
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %v", err)
	}
	return &user, nil
}

// SetVerifyOTP stores a verification code and its expiry on the account.
func (s *Users) SetVerifyOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{
			"verify_otp":         code,
			"verify_otp_expires": expiresAt,
		},
	})
}

// ClearVerifyOTP removes the verification code and expiry from the account.
func (s *Users) ClearVerifyOTP(ctx context.Context, id string) error {
	return s.update(ctx, id, bson.M{
		"$unset": bson.M{
			"verify_otp":         "",
			"verify_otp_expires": "",
		},
	})
}

// MarkVerified flips the verified flag and clears the verification code.
func (s *Users) MarkVerified(ctx context.Context, id string) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{"is_verified": true},
		"$unset": bson.M{
			"verify_otp":         "",
			"verify_otp_expires": "",
		},
	})
}

// SetResetOTP stores a password reset code and its expiry on the account.
func (s *Users) SetResetOTP(ctx context.Context, id, code string, expiresAt int64) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{
			"reset_otp":         code,
			"reset_otp_expires": expiresAt,
		},
	})
}

// ClearResetOTP removes the reset code and expiry from the account.
func (s *Users) ClearResetOTP(ctx context.Context, id string) error {
	return s.update(ctx, id, bson.M{
		"$unset": bson.M{
			"reset_otp":         "",
			"reset_otp_expires": "",
		},
	})
}

// UpdatePassword replaces the stored hash and clears the reset code.
func (s *Users) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return s.update(ctx, id, bson.M{
		"$set": bson.M{"password_hash": passwordHash},
		"$unset": bson.M{
			"reset_otp":         "",
			"reset_otp_expires": "",
		},
	})
}

func (s *Users) update(ctx context.Context, id string, update bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return auth.ErrAccountNotFound
	}
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("error updating user: %v", err)
	}
	if res.MatchedCount == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}
