package models

import "time"

// Task là cấu trúc dữ liệu của một công việc, luôn thuộc về đúng một Profile
type Task struct {
	ID          string    `json:"id"`
	UserID      int64     `json:"user"`  // chủ sở hữu, do server gán lúc tạo
	Email       string    `json:"email"` // email của chủ sở hữu, chỉ đọc
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	Created     time.Time `json:"created"`
}
