package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/biosecret/todoapp-api/models"
	"github.com/jackc/pgx/v5/pgconn"
)

// Mã lỗi của PostgreSQL khi vi phạm ràng buộc UNIQUE
const uniqueViolation = "23505"

// PostgresProfileStore lưu Profile trong PostgreSQL
type PostgresProfileStore struct {
	db *sql.DB
}

func NewPostgresProfileStore(db *sql.DB) *PostgresProfileStore {
	return &PostgresProfileStore{db: db}
}

func (s *PostgresProfileStore) Create(ctx context.Context, p *models.Profile) error {
	query := `INSERT INTO profiles (email, name, surname, password)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	err := s.db.QueryRowContext(ctx, query, p.Email, p.Name, p.Surname, p.Password).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresProfileStore) Get(ctx context.Context, id int64) (*models.Profile, error) {
	query := `SELECT id, email, name, surname, password FROM profiles WHERE id = $1`

	p := &models.Profile{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Email, &p.Name, &p.Surname, &p.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (s *PostgresProfileStore) GetByEmail(ctx context.Context, email string) (*models.Profile, error) {
	query := `SELECT id, email, name, surname, password FROM profiles WHERE email = $1`

	p := &models.Profile{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(&p.ID, &p.Email, &p.Name, &p.Surname, &p.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

func (s *PostgresProfileStore) Update(ctx context.Context, p *models.Profile) error {
	query := `UPDATE profiles SET email = $1, name = $2, surname = $3, password = $4
	          WHERE id = $5`

	res, err := s.db.ExecContext(ctx, query, p.Email, p.Name, p.Surname, p.Password, p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("db error: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete xóa profile; các task thuộc về profile bị xóa theo (ON DELETE CASCADE)
func (s *PostgresProfileStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
