package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/mbeoliero/leadgen/domain/entity"
	"github.com/mbeoliero/leadgen/domain/repo"
	"github.com/mbeoliero/leadgen/infra/config"
	"github.com/mbeoliero/leadgen/pkg/log"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrResetTokenInvalid  = errors.New("invalid or expired token")
)

type accessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// ResetTokenStore holds single-use password-reset tokens with expiry.
type ResetTokenStore interface {
	Save(ctx context.Context, token string, email string) error
	Consume(ctx context.Context, token string) (string, error)
}

// MailSender delivers the reset link.
type MailSender interface {
	SendPasswordReset(ctx context.Context, to string, resetLink string) error
}

type AuthService struct {
	cfg      config.AuthConfig
	userRepo repo.UserRepo
	tokens   ResetTokenStore
	mail     MailSender
}

func NewAuthService(cfg config.AuthConfig, tokens ResetTokenStore, mail MailSender) *AuthService {
	return &AuthService{
		cfg:      cfg,
		userRepo: repo.GetUserRepo(),
		tokens:   tokens,
		mail:     mail,
	}
}

// Signup 注册用户
func (s *AuthService) Signup(ctx context.Context, email string, password string) error {
	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.Create(ctx, &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
	})
}

// Login verifies the password and issues an access token. Unknown account and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email string, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(user.Email)
}

func (s *AuthService) issueToken(email string) (string, error) {
	now := time.Now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenExpiry)),
		},
		Email: email,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JwtSecret))
}

// Authorize validates a raw Authorization header and returns the caller's
// email. Failures carry an *AuthError kind for logging; the API layer maps
// them all to a generic 401.
func (s *AuthService) Authorize(authorization string) (string, error) {
	tokenStr, ok := strings.CutPrefix(authorization, "Bearer ")
	if !ok || tokenStr == "" {
		return "", newAuthError(AuthErrorMalformedHeader, nil)
	}
	return s.VerifyToken(tokenStr)
}

// VerifyToken 校验访问令牌并取出用户邮箱
func (s *AuthService) VerifyToken(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JwtSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", newAuthError(AuthErrorTokenExpired, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", newAuthError(AuthErrorBadSignature, err)
		default:
			return "", newAuthError(AuthErrorMalformedHeader, err)
		}
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || claims.Email == "" {
		return "", newAuthError(AuthErrorInvalidClaims, nil)
	}
	return claims.Email, nil
}

// RequestPasswordReset responds uniformly whether or not the account exists,
// so the endpoint never reveals registered emails.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		log.CtxInfo(ctx, "password reset requested for unknown email")
		return nil
	}
	return s.sendResetLink(ctx, user.Email)
}

// SendResetLink is the authenticated variant; here an unknown account is an
// error because the caller proved who they are.
func (s *AuthService) SendResetLink(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	return s.sendResetLink(ctx, user.Email)
}

func (s *AuthService) sendResetLink(ctx context.Context, email string) error {
	token, err := randomToken(32)
	if err != nil {
		return err
	}
	if err = s.tokens.Save(ctx, token, email); err != nil {
		return err
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.cfg.FrontendUrl, token)
	if err = s.mail.SendPasswordReset(ctx, email, resetLink); err != nil {
		return err
	}

	log.CtxInfo(ctx, "password reset link sent")
	return nil
}

// ConfirmPasswordReset 使用重置令牌设置新密码
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, token string, newPassword string) error {
	email, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return err
	}
	if email == "" {
		return ErrResetTokenInvalid
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, email, string(hash))
}

// Me 查询当前用户资料
func (s *AuthService) Me(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile 更新用户资料，仅更新请求中出现的字段
func (s *AuthService) UpdateProfile(ctx context.Context, email string, fullName, company *string) error {
	fields := make(map[string]any)
	if fullName != nil {
		fields["full_name"] = *fullName
	}
	if company != nil {
		fields["company"] = *company
	}
	return s.userRepo.UpdateProfile(ctx, email, fields)
}

func randomToken(bytes int) (string, error) {
	b := make([]byte, bytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
