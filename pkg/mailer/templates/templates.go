package templates

import (
	"bytes"
	"embed"
	htmpl "html/template"
	"strings"
	"time"
)

//go:embed *.tmpl
var FS embed.FS

// Template names.
const (
	Welcome   = "welcome"
	VerifyOTP = "verify_otp"
	ResetOTP  = "reset_otp"
)

// Subjects per template, matching what CineSpot has always sent.
var subjects = map[string]string{
	Welcome:   "Welcome to CineSpot",
	VerifyOTP: "Verify Your Account - CineSpot",
	ResetOTP:  "Reset Your Password - CineSpot",
}

// EmailData carries the fields the account emails interpolate.
type EmailData struct {
	Name      string
	Email     string
	Code      string
	ExpiresIn string
}

func funcs() htmpl.FuncMap {
	return htmpl.FuncMap{
		"now":   func() time.Time { return time.Now().UTC() },
		"upper": strings.ToUpper,
	}
}

// Subject returns the subject line for a template name.
func Subject(name string) string {
	if s, ok := subjects[name]; ok {
		return s
	}
	return "CineSpot Notification"
}

// RenderHTML renders the named embedded template with data.
func RenderHTML(name string, data EmailData) (string, error) {
	t, err := htmpl.New(name + ".tmpl").Funcs(funcs()).ParseFS(FS, name+".tmpl")
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
