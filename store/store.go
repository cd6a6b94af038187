package store

import (
	"context"
	"errors"

	"github.com/biosecret/todoapp-api/models"
)

var (
	// ErrNotFound khi bản ghi không tồn tại hoặc không thuộc về người gọi
	ErrNotFound = errors.New("not found")
	// ErrDuplicateEmail khi email đã được đăng ký
	ErrDuplicateEmail = errors.New("duplicate email")
)

// ProfileStore là lớp lưu trữ cho Profile
type ProfileStore interface {
	Create(ctx context.Context, p *models.Profile) error
	Get(ctx context.Context, id int64) (*models.Profile, error)
	GetByEmail(ctx context.Context, email string) (*models.Profile, error)
	Update(ctx context.Context, p *models.Profile) error
	Delete(ctx context.Context, id int64) error
}

// TaskStore là lớp lưu trữ cho Task. Mọi thao tác theo id đều được giới hạn
// theo userID: task của người khác và task không tồn tại trả về cùng một lỗi
type TaskStore interface {
	Create(ctx context.Context, t *models.Task) error
	Get(ctx context.Context, id string, userID int64) (*models.Task, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Task, error)
	Update(ctx context.Context, t *models.Task) error
	Delete(ctx context.Context, id string, userID int64) error
}
