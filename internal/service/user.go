package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/store"
)

// ValidateUser looks up the token subject. A missing user is not an
// error: (nil, nil) lets the caller pick the failure mode.
func ValidateUser(ctx context.Context, db database.DB, id uuid.UUID) (*model.User, error) {
	u, err := store.GetUserByID(ctx, db, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}
