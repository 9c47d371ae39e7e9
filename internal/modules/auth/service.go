package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"skybook/internal/domain"
	"skybook/internal/pkg/random"
)

const (
	otpLength = 6
	otpTTL    = 30 * time.Minute

	resetTokenLength = 32
)

type Service struct {
	users    UserRepository
	mailer   Mailer
	tokens   TokenIssuer
	notifier Notifier
	resetURL string
}

// NewService wires auth. resetURL is the frontend page the password-reset
// token is appended to.
func NewService(users UserRepository, mailer Mailer, tokens TokenIssuer, notifier Notifier, resetURL string) *Service {
	return &Service{users: users, mailer: mailer, tokens: tokens, notifier: notifier, resetURL: resetURL}
}

// Register creates an unverified account and mails the OTP. The unique
// indexes on email and phone are the source of truth for duplicates.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	u := &domain.User{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		Role:         domain.RoleUser,
		OTP:          random.Digits(otpLength),
		OTPCreatedAt: &now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOTP(u.Email, u.OTP); err != nil {
			log.Printf("otp mail to %s: %v", u.Email, err)
		}
	}
	return u, nil
}

// VerifyOTP flips the account to verified when the code matches and is
// still inside its window.
func (s *Service) VerifyOTP(ctx context.Context, req VerifyOTPRequest) error {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}
	if u.OTP == "" || u.OTP != req.OTP {
		return ErrInvalidOTP
	}
	if u.OTPCreatedAt == nil || time.Since(*u.OTPCreatedAt) > otpTTL {
		return ErrInvalidOTP
	}

	u.IsVerified = true
	u.OTP = ""
	u.OTPCreatedAt = nil
	return s.users.Update(ctx, u)
}

func (s *Service) ResendOTP(ctx context.Context, req ResendOTPRequest) error {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if u.IsVerified {
		return ErrAlreadyVerified
	}

	now := time.Now()
	u.OTP = random.Digits(otpLength)
	u.OTPCreatedAt = &now
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendOTP(u.Email, u.OTP); err != nil {
			log.Printf("otp mail to %s: %v", u.Email, err)
		}
	}
	return nil
}

// Login checks the credentials and issues a signed token. Unverified
// accounts cannot log in.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, *domain.User, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return "", nil, ErrInvalidCredentials
	}
	if !u.IsVerified {
		return "", nil, ErrNotVerified
	}

	token, err := s.tokens.GenerateToken(u.ID, string(u.Role))
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

// ForgotPassword stores a reset token and mails the reset link. Unknown
// emails report success to the caller so addresses cannot be probed.
func (s *Service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) error {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	u.ResetToken = random.Code(resetTokenLength)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	if s.mailer != nil {
		if err := s.mailer.SendPasswordReset(u.Email, s.resetURL+"?token="+u.ResetToken); err != nil {
			log.Printf("reset mail to %s: %v", u.Email, err)
		}
	}
	return nil
}

func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	u, err := s.users.GetByResetToken(ctx, req.Token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.ResetToken = ""
	return s.users.Update(ctx, u)
}

// ChangePassword verifies the current password before replacing it, then
// drops a notification so the user sees the change happened.
func (s *Service) ChangePassword(ctx context.Context, userID int64, req ChangePasswordRequest) error {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.OldPassword)) != nil {
		return ErrWrongPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	if err := s.users.Update(ctx, u); err != nil {
		return err
	}

	if s.notifier != nil {
		err := s.notifier.Notify(ctx, u.ID, "Password changed",
			"Your account password was just changed. Contact support if this was not you.")
		if err != nil {
			log.Printf("password-change notification for user %d: %v", u.ID, err)
		}
	}
	return nil
}

func (s *Service) Profile(ctx context.Context, userID int64) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}
