package handlers

import (
	"net/mail"
	"strings"

	"github.com/biosecret/todoapp-api/models"
)

// Thông báo lỗi theo từng field, giữ nguyên câu chữ quen thuộc của REST API
const (
	msgRequired     = "This field is required."
	msgBlank        = "This field may not be blank."
	msgInvalidEmail = "Enter a valid email address."
	msgDupEmail     = "profile with this email already exists."
)

// ProfileInput là payload vào cho create/update profile. Dùng con trỏ để
// phân biệt field bị bỏ trống với field không được gửi lên (partial update)
type ProfileInput struct {
	Email    *string `json:"email" form:"email"`
	Name     *string `json:"name" form:"name"`
	Surname  *string `json:"surname" form:"surname"`
	Password *string `json:"password" form:"password"`
}

// Validate kiểm tra payload. Với partial=false thì email, name, surname là
// bắt buộc; password luôn không bắt buộc (update giữ nguyên hash cũ).
// Trả về map lỗi theo field, rỗng nghĩa là hợp lệ
func (in *ProfileInput) Validate(partial bool) map[string]string {
	errs := map[string]string{}

	checkRequired(errs, "email", in.Email, partial)
	checkRequired(errs, "name", in.Name, partial)
	checkRequired(errs, "surname", in.Surname, partial)

	if in.Email != nil && errs["email"] == "" {
		if _, err := mail.ParseAddress(*in.Email); err != nil {
			errs["email"] = msgInvalidEmail
		}
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) == "" {
		errs["password"] = msgBlank
	}
	return errs
}

// ValidateCreate như Validate(false) nhưng password bắt buộc (signup)
func (in *ProfileInput) ValidateCreate() map[string]string {
	errs := in.Validate(false)
	if in.Password == nil {
		errs["password"] = msgRequired
	}
	return errs
}

// Apply ghi các field được gửi lên vào profile. Password không được xử lý
// ở đây: handler phải hash trước khi lưu
func (in *ProfileInput) Apply(p *models.Profile) {
	if in.Email != nil {
		p.Email = *in.Email
	}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Surname != nil {
		p.Surname = *in.Surname
	}
}

// TaskInput là payload vào cho create/update task. Các field user, email,
// created do server quản lý nên không nhận từ client
type TaskInput struct {
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Completed   *bool   `json:"completed" form:"completed"`
}

// Validate kiểm tra payload task; với partial=false thì title là bắt buộc
func (in *TaskInput) Validate(partial bool) map[string]string {
	errs := map[string]string{}

	checkRequired(errs, "title", in.Title, partial)
	return errs
}

func checkRequired(errs map[string]string, field string, val *string, partial bool) {
	switch {
	case val == nil && !partial:
		errs[field] = msgRequired
	case val != nil && strings.TrimSpace(*val) == "":
		errs[field] = msgBlank
	}
}
