package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type profilePayload struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,pwd"`
	OTP       string `json:"otp" validate:"omitempty,otp"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.RegisterAlias("pwd", "min=6")
	v.RegisterAlias("otp", "len=6,numeric")
	return v
}

func TestAliasesAccept(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(profilePayload{
		Email:     "ada@example.com",
		Password:  "hunter22",
		OTP:       "482913",
		AvatarURL: "https://cdn.example.com/a.png",
	})
	assert.NoError(t, err)
}

func TestAliasesReject(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(profilePayload{Email: "ada@example.com", Password: "short"})
	assert.Error(t, err, "five-character password fails pwd")

	err = v.Struct(profilePayload{Email: "ada@example.com", Password: "hunter22", OTP: "12345"})
	assert.Error(t, err, "five-digit otp fails len")

	err = v.Struct(profilePayload{Email: "ada@example.com", Password: "hunter22", OTP: "abcdef"})
	assert.Error(t, err, "non-numeric otp fails")
}

func TestToDetailsFieldMessages(t *testing.T) {
	v := newValidator(t)
	err := v.Struct(profilePayload{Email: "not-an-email", Password: ""})
	require.Error(t, err)

	details := ToDetails(err)
	require.NotEmpty(t, details)
	// Field names come from the struct here since no tag-name func is
	// registered on this private instance; messages are what matters.
	assert.Contains(t, details["Email"], "valid email")
	assert.Contains(t, details["Password"], "required")
}

func TestToDetailsNonValidationError(t *testing.T) {
	details := ToDetails(errors.New("boom"))
	assert.Equal(t, map[string]string{"payload": "invalid payload"}, details)

	assert.Nil(t, ToDetails(nil))
}
