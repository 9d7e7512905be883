package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/kelcho-spense/farmer-certification-portal-api/internal/database"
	"github.com/kelcho-spense/farmer-certification-portal-api/internal/model"
)

// ErrEmailExists reports a violation of the users.email uniqueness
// constraint.
var ErrEmailExists = errors.New("email already exists")

const uniqueViolationCode = "23505"

const userColumns = `id, email, password_hash, name, farm_size, crop_type, role, status, refresh_token_hash, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	u := &model.User{}
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.FarmSize,
		&u.CropType,
		&u.Role,
		&u.Status,
		&u.RefreshTokenHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, email, password_hash, name, farm_size, crop_type, role, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.FarmSize,
		u.CropType,
		u.Role,
		u.Status,
	)
	if err := row.Scan(&u.CreatedAt, &u.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func GetUserByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

// GetFarmerByID resolves id only against farmer rows; an admin id yields
// pgx.ErrNoRows.
func GetFarmerByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1 AND role = $2`,
		id,
		model.RoleFarmer,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("GetFarmerByID: %w", err)
	}
	return u, nil
}

// ListFarmers returns every farmer, newest first.
func ListFarmers(ctx context.Context, db database.DB) ([]model.User, error) {
	rows, err := db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE role = $1 ORDER BY created_at DESC`,
		model.RoleFarmer,
	)
	if err != nil {
		return nil, fmt.Errorf("ListFarmers: %w", err)
	}
	defer rows.Close()

	var farmers []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("ListFarmers: %w", err)
		}
		farmers = append(farmers, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListFarmers: %w", err)
	}
	return farmers, nil
}

// UpdateRefreshTokenHash overwrites the stored refresh-token hash.
// nil clears it (logout). Last writer wins; concurrent refreshes are not
// serialized.
func UpdateRefreshTokenHash(ctx context.Context, db database.DB, id uuid.UUID, hash *string) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET refresh_token_hash = $1, updated_at = now() WHERE id = $2`,
		hash,
		id,
	)
	if err != nil {
		return fmt.Errorf("UpdateRefreshTokenHash: %w", err)
	}
	return nil
}

// UpdateFarmerStatus overwrites a farmer's certification status and
// returns the updated row; pgx.ErrNoRows when the id is not a farmer.
func UpdateFarmerStatus(ctx context.Context, db database.DB, id uuid.UUID, status model.CertificationStatus) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET status = $1, updated_at = now()
		 WHERE id = $2 AND role = $3
		 RETURNING `+userColumns,
		status,
		id,
		model.RoleFarmer,
	)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("UpdateFarmerStatus: %w", err)
	}
	return u, nil
}
