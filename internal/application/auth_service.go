package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/domain/repository"
	"github.com/cinespot/cinespot-api/pkg/helpers"
	tpl "github.com/cinespot/cinespot-api/pkg/mailer/templates"
)

// Session is a freshly issued session credential.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService orchestrates registration, login and the OTP flows. It
// holds no mutable state of its own; every durable change goes through
// the user repository. All failures come back as *Error values so the
// HTTP layer can flatten them into {success:false, message}.
type AuthService struct {
	Repo     repository.UserRepository
	JWT      *helpers.JWTManager
	Notifier Notifier
	Logger   *logrus.Logger

	VerifyOTPTTL time.Duration
	ResetOTPTTL  time.Duration

	// Now is the clock; tests override it to pin expiry boundaries.
	Now func() time.Time
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, notifier Notifier, logger *logrus.Logger, verifyTTL, resetTTL time.Duration) *AuthService {
	return &AuthService{
		Repo:         repo,
		JWT:          jwt,
		Notifier:     notifier,
		Logger:       logger,
		VerifyOTPTTL: verifyTTL,
		ResetOTPTTL:  resetTTL,
		Now:          time.Now,
	}
}

// Register creates an unverified account, issues a session for it and
// sends the welcome email. The email send is awaited; if it fails the
// whole call fails even though the account was already persisted, which
// matches what the API has always reported.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, validationErr("Please fill in all fields")
	}

	if _, err := s.Repo.GetByEmail(ctx, email); err == nil {
		return nil, conflictErr("User Already Exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, infraErr("Something went wrong", err)
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, infraErr("Something went wrong", err)
	}

	u := &entity.User{Name: name, Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, conflictErr("User Already Exists")
		}
		return nil, infraErr("Something went wrong", err)
	}

	sess, err := s.issueSession(u.ID)
	if err != nil {
		return nil, err
	}

	if err := s.sendEmail(ctx, u, tpl.Welcome, "", 0); err != nil {
		return nil, err
	}
	return sess, nil
}

// Login checks the credentials and issues a session. Unverified accounts
// may log in; verification gates nothing here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, validationErr("Please fill in all fields")
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("Invalid Email")
	} else if err != nil {
		return nil, infraErr("Something went wrong", err)
	}

	if !helpers.CheckPassword(u.Password, password) {
		return nil, credentialErr("Invalid Password")
	}

	return s.issueSession(u.ID)
}

// RequestVerifyOTP stores a fresh verification code on the account,
// overwriting any pending one, and mails it. Window: VerifyOTPTTL.
func (s *AuthService) RequestVerifyOTP(ctx context.Context, userID string) error {
	u, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if u.IsVerified {
		return conflictErr("Account Already Verified")
	}

	code, err := helpers.GenOTPCode()
	if err != nil {
		return infraErr("Something went wrong", err)
	}
	u.VerifyOTP = entity.PendingOTP(code, s.Now().Add(s.VerifyOTPTTL))

	if err := s.Repo.Update(ctx, u); err != nil {
		return infraErr("Something went wrong", err)
	}
	return s.sendEmail(ctx, u, tpl.VerifyOTP, code, s.VerifyOTPTTL)
}

// ConfirmVerifyOTP marks the account verified when code matches the
// pending slot and the window has not passed. The slot is cleared on
// success, so replaying the same code fails as invalid.
func (s *AuthService) ConfirmVerifyOTP(ctx context.Context, userID, code string) error {
	if userID == "" || code == "" {
		return validationErr("Please provide both userId and otp")
	}
	u, err := s.getByID(ctx, userID)
	if err != nil {
		return err
	}
	if !u.VerifyOTP.Matches(code) {
		return credentialErr("Invalid OTP")
	}
	if u.VerifyOTP.Expired(s.Now()) {
		return credentialErr("OTP has expired")
	}

	u.IsVerified = true
	u.VerifyOTP.Clear()
	if err := s.Repo.Update(ctx, u); err != nil {
		return infraErr("Something went wrong", err)
	}
	return nil
}

// RequestResetOTP stores a fresh password-reset code for the account
// behind email and mails it. Window: ResetOTPTTL, deliberately short.
func (s *AuthService) RequestResetOTP(ctx context.Context, email string) error {
	if email == "" {
		return validationErr("Please provide email")
	}
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return err
	}

	code, err := helpers.GenOTPCode()
	if err != nil {
		return infraErr("Something went wrong", err)
	}
	u.ResetOTP = entity.PendingOTP(code, s.Now().Add(s.ResetOTPTTL))

	if err := s.Repo.Update(ctx, u); err != nil {
		return infraErr("Something went wrong", err)
	}
	return s.sendEmail(ctx, u, tpl.ResetOTP, code, s.ResetOTPTTL)
}

// ConfirmResetPassword swaps in a new password hash when the reset code
// checks out. No session is issued; the user logs in again.
func (s *AuthService) ConfirmResetPassword(ctx context.Context, email, code, newPassword string) error {
	if email == "" || code == "" || newPassword == "" {
		return validationErr("Please fill all fields")
	}
	u, err := s.getByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !u.ResetOTP.Matches(code) {
		return credentialErr("Invalid OTP")
	}
	if u.ResetOTP.Expired(s.Now()) {
		return credentialErr("OTP expired")
	}

	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return infraErr("Something went wrong", err)
	}
	u.Password = hash
	u.ResetOTP.Clear()
	if err := s.Repo.Update(ctx, u); err != nil {
		return infraErr("Something went wrong", err)
	}
	return nil
}

func (s *AuthService) issueSession(userID string) (*Session, error) {
	token, exp, err := s.JWT.Generate(userID)
	if err != nil {
		return nil, infraErr("Something went wrong", err)
	}
	return &Session{Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) getByID(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("User not found")
	} else if err != nil {
		return nil, infraErr("Something went wrong", err)
	}
	return u, nil
}

func (s *AuthService) getByEmail(ctx context.Context, email string) (*entity.User, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFoundErr("User not found")
	} else if err != nil {
		return nil, infraErr("Something went wrong", err)
	}
	return u, nil
}

func (s *AuthService) sendEmail(ctx context.Context, u *entity.User, template, code string, window time.Duration) error {
	data := tpl.EmailData{Name: u.Name, Email: u.Email, Code: code}
	if window > 0 {
		data.ExpiresIn = formatWindow(window)
	}
	html, err := tpl.RenderHTML(template, data)
	if err != nil {
		return infraErr("Could not send email", err)
	}
	if err := s.Notifier.Send(ctx, u.Email, tpl.Subject(template), html); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("email send failed")
		}
		return infraErr("Could not send email", err)
	}
	return nil
}

func formatWindow(d time.Duration) string {
	if d >= time.Hour {
		return fmt.Sprintf("%d hours", int(d.Hours()))
	}
	return fmt.Sprintf("%d minutes", int(d.Minutes()))
}
