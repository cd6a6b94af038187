package handlers

import (
	"testing"

	"github.com/biosecret/todoapp-api/models"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestProfileInputValidateCreate(t *testing.T) {
	in := &ProfileInput{}
	errs := in.ValidateCreate()
	assert.Equal(t, msgRequired, errs["email"])
	assert.Equal(t, msgRequired, errs["name"])
	assert.Equal(t, msgRequired, errs["surname"])
	assert.Equal(t, msgRequired, errs["password"])

	in = &ProfileInput{
		Email:    strPtr("john@example.com"),
		Name:     strPtr("John"),
		Surname:  strPtr("Doe"),
		Password: strPtr("somepassword"),
	}
	assert.Empty(t, in.ValidateCreate())
}

func TestProfileInputValidateEmailFormat(t *testing.T) {
	in := &ProfileInput{
		Email:   strPtr("not-an-email"),
		Name:    strPtr("John"),
		Surname: strPtr("Doe"),
	}
	errs := in.Validate(false)
	assert.Equal(t, msgInvalidEmail, errs["email"])
}

func TestProfileInputValidatePartial(t *testing.T) {
	// partial: không gửi field nào cũng hợp lệ
	in := &ProfileInput{}
	assert.Empty(t, in.Validate(true))

	// nhưng field gửi lên mà để trống thì không
	in = &ProfileInput{Name: strPtr("  ")}
	errs := in.Validate(true)
	assert.Equal(t, msgBlank, errs["name"])

	in = &ProfileInput{Password: strPtr("")}
	errs = in.Validate(true)
	assert.Equal(t, msgBlank, errs["password"])
}

func TestProfileInputApply(t *testing.T) {
	p := &models.Profile{
		Email:    "old@example.com",
		Name:     "Old",
		Surname:  "Name",
		Password: "hash",
	}

	in := &ProfileInput{Name: strPtr("New"), Password: strPtr("ignored")}
	in.Apply(p)

	assert.Equal(t, "New", p.Name)
	assert.Equal(t, "old@example.com", p.Email)
	assert.Equal(t, "Name", p.Surname)
	// Apply không đụng tới password, handler tự hash
	assert.Equal(t, "hash", p.Password)
}

func TestTaskInputValidate(t *testing.T) {
	in := &TaskInput{}
	errs := in.Validate(false)
	assert.Equal(t, msgRequired, errs["title"])
	assert.Empty(t, in.Validate(true))

	in = &TaskInput{Title: strPtr("")}
	errs = in.Validate(true)
	assert.Equal(t, msgBlank, errs["title"])

	in = &TaskInput{Title: strPtr("Test task")}
	assert.Empty(t, in.Validate(false))
}
