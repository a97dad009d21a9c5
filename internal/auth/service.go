package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const DefaultTokenTTL = 24 * time.Hour

type account struct {
	user domain.User
	hash []byte
}

// Service authenticates the two demo accounts and issues session tokens.
// There is no registration and no user storage; the account list is fixed.
type Service struct {
	secret   []byte
	tokenTTL time.Duration
	accounts map[string]account // keyed by email
}

func NewService(secret []byte, tokenTTL time.Duration) (*Service, error) {
	if tokenTTL == 0 {
		tokenTTL = DefaultTokenTTL
	}

	s := &Service{
		secret:   secret,
		tokenTTL: tokenTTL,
		accounts: make(map[string]account),
	}

	seed := []struct {
		user     domain.User
		password string
	}{
		{domain.User{ID: "1", Name: "Administrador", Email: "admin@exemplo.com", IsAdmin: true}, "admin123"},
		{domain.User{ID: "2", Name: "Usuário Comum", Email: "usuario@exemplo.com", IsAdmin: false}, "user123"},
	}
	for _, acc := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash seed password: %w", err)
		}
		s.accounts[acc.user.Email] = account{user: acc.user, hash: hash}
	}

	return s, nil
}

// Login checks the credentials against the fixed accounts and returns a
// signed session token plus the authenticated user.
func (s *Service) Login(email, password string) (string, domain.User, error) {
	acc, ok := s.accounts[email]
	if !ok {
		return "", domain.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return "", domain.User{}, ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   acc.user.ID,
		"name":  acc.user.Name,
		"email": acc.user.Email,
		"admin": acc.user.IsAdmin,
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, acc.user, nil
}

// VerifyToken parses a session token and reconstructs the user it was
// issued for.
func (s *Service) VerifyToken(tokenString string) (domain.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, ErrInvalidToken
	}

	id, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	email, _ := claims["email"].(string)
	admin, _ := claims["admin"].(bool)
	if id == "" {
		return domain.User{}, ErrInvalidToken
	}

	return domain.User{ID: id, Name: name, Email: email, IsAdmin: admin}, nil
}
