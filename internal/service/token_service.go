package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adopta-gatos/internal/domain"
)

// TokenService emite y valida tokens de sesión firmados.
// No hay lista de revocación: un token es válido hasta que expira.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

type sessionClaims struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

var (
	ErrTokenInvalid = errors.New("session token invalid")
	ErrTokenExpired = errors.New("session token expired")
)

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "adopta-gatos",
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// NewTokenServiceAt permite inyectar el reloj, para fijar emisión y
// verificación en tiempos conocidos.
func NewTokenServiceAt(secret string, ttl time.Duration, now func() time.Time) *TokenService {
	svc := NewTokenService(secret, ttl)
	if now != nil {
		svc.now = now
	}
	return svc
}

// TTL expone la vigencia configurada, útil para alinear el max-age de la cookie.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue firma un token con la identidad dada y vigencia s.ttl desde ahora.
func (s *TokenService) Issue(claim domain.IdentityClaim) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrTokenInvalid
	}
	if strings.TrimSpace(claim.ID) == "" {
		return "", ErrTokenInvalid
	}
	now := s.now()
	claims := sessionClaims{
		Username: claim.Username,
		Name:     claim.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   claim.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify valida firma y expiración y devuelve la identidad embebida.
// Un token inválido es un resultado esperado, nunca un panic.
func (s *TokenService) Verify(tokenString string) (domain.IdentityClaim, error) {
	if len(s.secret) == 0 {
		return domain.IdentityClaim{}, ErrTokenInvalid
	}
	if strings.TrimSpace(tokenString) == "" {
		return domain.IdentityClaim{}, ErrTokenInvalid
	}

	var claims sessionClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	_, err := parser.ParseWithClaims(tokenString, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.IdentityClaim{}, ErrTokenExpired
		}
		return domain.IdentityClaim{}, ErrTokenInvalid
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.Issuer != s.issuer {
		return domain.IdentityClaim{}, ErrTokenInvalid
	}
	return domain.IdentityClaim{
		ID:       claims.Subject,
		Username: claims.Username,
		Name:     claims.Name,
	}, nil
}
