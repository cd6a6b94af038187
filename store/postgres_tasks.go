package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/biosecret/todoapp-api/models"
)

// PostgresTaskStore lưu Task trong PostgreSQL. Email của chủ sở hữu không
// được lưu trong bảng tasks mà được join từ profiles lúc đọc
type PostgresTaskStore struct {
	db *sql.DB
}

func NewPostgresTaskStore(db *sql.DB) *PostgresTaskStore {
	return &PostgresTaskStore{db: db}
}

func (s *PostgresTaskStore) Create(ctx context.Context, t *models.Task) error {
	query := `INSERT INTO tasks (id, user_id, title, description, completed)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created`

	err := s.db.QueryRowContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, t.Completed).Scan(&t.Created)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *PostgresTaskStore) Get(ctx context.Context, id string, userID int64) (*models.Task, error) {
	query := `SELECT t.id, t.user_id, p.email, t.title, t.description, t.completed, t.created
	          FROM tasks t JOIN profiles p ON p.id = t.user_id
	          WHERE t.id = $1 AND t.user_id = $2`

	t := &models.Task{}
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&t.ID, &t.UserID, &t.Email, &t.Title, &t.Description, &t.Completed, &t.Created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (s *PostgresTaskStore) ListByUser(ctx context.Context, userID int64) ([]models.Task, error) {
	query := `SELECT t.id, t.user_id, p.email, t.title, t.description, t.completed, t.created
	          FROM tasks t JOIN profiles p ON p.id = t.user_id
	          WHERE t.user_id = $1
	          ORDER BY t.created DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var t models.Task
		if err := rows.Scan(&t.ID, &t.UserID, &t.Email, &t.Title, &t.Description, &t.Completed, &t.Created); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return tasks, nil
}

func (s *PostgresTaskStore) Update(ctx context.Context, t *models.Task) error {
	query := `UPDATE tasks SET title = $1, description = $2, completed = $3
	          WHERE id = $4 AND user_id = $5`

	res, err := s.db.ExecContext(ctx, query, t.Title, t.Description, t.Completed, t.ID, t.UserID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresTaskStore) Delete(ctx context.Context, id string, userID int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	count, _ := res.RowsAffected()
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
