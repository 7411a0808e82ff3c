package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/supporthub/supporthub/internal/shared/authorization"
	"github.com/supporthub/supporthub/internal/shared/biztime"
	"github.com/supporthub/supporthub/internal/shared/config"
)

const defaultAccessExp = 8 * time.Hour

// Claims identify a staff user. The subject is the user ID.
type Claims struct {
	Name string                 `json:"name,omitempty"`
	Role authorization.UserRole `json:"role,omitempty"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret    []byte
	issuer    string
	accessExp time.Duration
	now       func() time.Time
}

func NewJWTService(cfg config.JWTConfig) *JWTService {
	exp := time.Duration(cfg.AccessExpMinutes) * time.Minute
	if exp <= 0 {
		exp = defaultAccessExp
	}
	return &JWTService{
		secret:    []byte(cfg.Secret),
		issuer:    cfg.Issuer,
		accessExp: exp,
		now:       biztime.NowUTC,
	}
}

// Issue signs an access token for the given user.
func (s *JWTService) Issue(userID, name string, role authorization.UserRole) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.accessExp)

	claims := &Claims{
		Name: name,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject")
	}
	return claims, nil
}
