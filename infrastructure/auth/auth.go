/*
Package auth 管理员登录：bcrypt 校验密码，签发并校验 HS256 JWT。
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bakery/config"
	"bakery/domain/shared"
	"bakery/domain/user"
	"bakery/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken token 缺失、过期或签名错误
	ErrInvalidToken = errors.New("invalid access token")
)

// Claims carried by access tokens
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service 认证服务
type Service struct {
	adminUsername     string
	adminPasswordHash []byte
	secret            []byte
	ttl               time.Duration
	now               func() time.Time
}

// NewService Create authentication service
func NewService(cfg config.AuthConfig) *Service {
	return &Service{
		adminUsername:     cfg.AdminUsername,
		adminPasswordHash: []byte(cfg.AdminPasswordHash),
		secret:            []byte(cfg.JWTSecret),
		ttl:               cfg.TokenTTL,
		now:               time.Now,
	}
}

// Login returns an access token when username and password are the admin's.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	if username != s.adminUsername || len(s.adminPasswordHash) == 0 {
		logger.FromContext(ctx).Warn("Login rejected", zap.String("username", username))
		return "", newInvalidCredentialsError()
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(password)); err != nil {
		logger.FromContext(ctx).Warn("Login rejected", zap.String("username", username))
		return "", newInvalidCredentialsError()
	}
	return s.Sign(username)
}

// Sign issues a token for username
func (s *Service) Sign(username string) (string, error) {
	now := s.now()
	claims := Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}
	return token, nil
}

// Verify parses token and resolves the user it was issued to.
func (s *Service) Verify(token string) (*user.User, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, shared.NewError(shared.ErrUnauthorized, errors.Join(ErrInvalidToken, err), "user", "", "Invalid access token")
	}
	if claims.Username != s.adminUsername {
		return nil, shared.NewError(shared.ErrUnauthorized, ErrInvalidToken, "user", "", "Invalid access token")
	}
	return user.New(claims.Username), nil
}

func newInvalidCredentialsError() error {
	return shared.NewError(shared.ErrUnauthorized, ErrInvalidCredentials, "user", "", "Invalid username or password")
}

// HashPassword is used to produce auth.admin_password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
