package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"certreg/internal/db"
)

var ErrUserNotFound error = errors.New("user not found")
var ErrIssuanceNotFound error = errors.New("issuance not found")

type CertificateRepository struct {
	db Storage
}

func NewCertificateRepository(db Storage) *CertificateRepository {
	return &CertificateRepository{
		db: db,
	}
}

func (r *CertificateRepository) MigrateAndSeed(ctx context.Context) error {

	err := r.db.MigrateTable(&User{}, &Issuance{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	users := []User{
		{
			ID:           uuid.NewString(),
			Username:     "registrar",
			PasswordHash: "$2a$10$7PrikY/17DYiRAA6JlaGl.yo26gwhTT53ESuovxGWvWJ4HhvGI/GK",
		},
		{
			ID:           uuid.NewString(),
			Username:     "provost",
			PasswordHash: "$2a$10$SHWr22XIYjY3/nLI6QOSJezr5KAB2AUs740F8NahmhBNsPsKacL8u",
		},
	}
	err = r.db.SeedTable(ctx, &users)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	return nil
}

func (r *CertificateRepository) GetUserByUsername(ctx context.Context, username string) (User, error) {
	var user User

	err := r.db.GetOneBy(ctx, "username", username, &user)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		return User{}, fmt.Errorf("get user by username: %w", err)
	}

	return user, nil
}

func (r *CertificateRepository) SaveIssuances(ctx context.Context, issuances []Issuance) error {
	if len(issuances) == 0 {
		return nil
	}

	err := r.db.SaveToTable(ctx, &issuances)
	if err != nil {
		return fmt.Errorf("save issuances: %w", err)
	}

	return nil
}

func (r *CertificateRepository) GetIssuancesByUser(ctx context.Context, userID string) ([]Issuance, error) {
	issuances := []Issuance{}

	err := r.db.GetAllBy(ctx, "user_id", []string{userID}, &issuances)
	if err != nil {
		return nil, fmt.Errorf("get issuances by user: %w", err)
	}

	return issuances, nil
}

func (r *CertificateRepository) MarkFinalized(ctx context.Context, certificateHash string) error {
	err := r.db.UpdateBy(ctx, &Issuance{}, "certificate_hash", certificateHash, map[string]any{"finalized": true})
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrIssuanceNotFound
		}
		return fmt.Errorf("mark issuance finalized: %w", err)
	}

	return nil
}
