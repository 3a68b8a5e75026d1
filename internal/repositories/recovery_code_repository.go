package repositories

import (
	"database/sql"
	"errors"

	"travelrequests/internal/models"
)

type RecoveryCodeRepository interface {
	Create(code *models.RecoveryCode) error
	// ValidCode returns the matching code only while it is active,
	// unused and unexpired; nil otherwise.
	ValidCode(email, code string) (*models.RecoveryCode, error)
	Update(code *models.RecoveryCode) error
	InvalidateAllForUser(userID int) error
}

type recoveryCodeRepository struct {
	DB *sql.DB
}

func NewRecoveryCodeRepository(db *sql.DB) RecoveryCodeRepository {
	return &recoveryCodeRepository{DB: db}
}

func (r *recoveryCodeRepository) Create(code *models.RecoveryCode) error {
	const q = `
		INSERT INTO recovery_codes (email, code, user_id, generated_at, expires_at, used, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	return r.DB.QueryRow(q,
		code.Email,
		code.Code,
		code.UserID,
		code.GeneratedAt,
		code.ExpiresAt,
		code.Used,
		code.Active,
	).Scan(&code.ID)
}

func (r *recoveryCodeRepository) ValidCode(email, code string) (*models.RecoveryCode, error) {
	const q = `
		SELECT id, email, code, user_id, generated_at, expires_at, used, active
		FROM recovery_codes
		WHERE email = $1 AND code = $2 AND active AND NOT used AND expires_at > NOW()
	`
	rc := &models.RecoveryCode{}
	err := r.DB.QueryRow(q, email, code).Scan(
		&rc.ID, &rc.Email, &rc.Code, &rc.UserID,
		&rc.GeneratedAt, &rc.ExpiresAt, &rc.Used, &rc.Active,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rc, nil
}

func (r *recoveryCodeRepository) Update(code *models.RecoveryCode) error {
	const q = `
		UPDATE recovery_codes
		SET used = $1, active = $2
		WHERE id = $3
	`
	_, err := r.DB.Exec(q, code.Used, code.Active, code.ID)
	return err
}

func (r *recoveryCodeRepository) InvalidateAllForUser(userID int) error {
	const q = `DELETE FROM recovery_codes WHERE user_id = $1`
	_, err := r.DB.Exec(q, userID)
	return err
}
