package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "Welcome to CineSpot", Subject(Welcome))
	assert.Equal(t, "Verify Your Account - CineSpot", Subject(VerifyOTP))
	assert.Equal(t, "Reset Your Password - CineSpot", Subject(ResetOTP))
	assert.Equal(t, "CineSpot Notification", Subject("unknown"))
}

func TestRenderWelcome(t *testing.T) {
	html, err := RenderHTML(Welcome, EmailData{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "ada@example.com")
}

func TestRenderOTPTemplatesIncludeCodeAndWindow(t *testing.T) {
	for _, name := range []string{VerifyOTP, ResetOTP} {
		html, err := RenderHTML(name, EmailData{Name: "Ada", Code: "482913", ExpiresIn: "24 hours"})
		require.NoError(t, err, name)
		assert.Contains(t, html, "482913", name)
		assert.Contains(t, html, "24 hours", name)
	}
}

func TestRenderEscapesHTML(t *testing.T) {
	html, err := RenderHTML(Welcome, EmailData{Name: "<script>alert(1)</script>", Email: "x@example.com"})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := RenderHTML("nope", EmailData{})
	assert.Error(t, err)
}
