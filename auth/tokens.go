package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scentara/perfume-api/models"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	// user_type claim values. Registered covers both EMAIL and PHONE users.
	ClaimUserTypeAnonymous  = "anonymous"
	ClaimUserTypeRegistered = "registered"
	ClaimUserTypeSocial     = "social"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrWrongTokenUse = errors.New("token type mismatch")
)

type Claims struct {
	UserID   string
	Email    string
	UserType string
	Exp      *time.Time
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// TokenManager signs and verifies HS256 JWTs. Anonymous tokens carry no
// expiry; access and refresh tokens expire on a fixed window.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

func NewTokenManager(secret string, accessTTL, refreshTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
}

func claimUserType(t models.UserType) string {
	switch t {
	case models.UserTypeAnonymous:
		return ClaimUserTypeAnonymous
	case models.UserTypeSocial:
		return ClaimUserTypeSocial
	default:
		return ClaimUserTypeRegistered
	}
}

// IssueAnonymous returns a non-expiring access token for a guest session.
func (m *TokenManager) IssueAnonymous(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":       userID,
		"type":      TokenTypeAccess,
		"user_type": ClaimUserTypeAnonymous,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// IssuePair returns an access/refresh token pair for a registered or
// social user.
func (m *TokenManager) IssuePair(u *models.User) (TokenPair, error) {
	now := m.now()

	access := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":       u.ID,
		"email":     u.Email,
		"type":      TokenTypeAccess,
		"user_type": claimUserType(u.UserType),
		"exp":       now.Add(m.accessTTL).Unix(),
	})
	accessSigned, err := access.SignedString(m.secret)
	if err != nil {
		return TokenPair{}, err
	}

	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  u.ID,
		"type": TokenTypeRefresh,
		"exp":  now.Add(m.refreshTTL).Unix(),
	})
	refreshSigned, err := refresh.SignedString(m.secret)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:  accessSigned,
		RefreshToken: refreshSigned,
		TokenType:    "bearer",
	}, nil
}

// Verify parses the token and re-checks the "type" claim against wantType,
// rejecting an access token presented as a refresh token and vice versa.
func (m *TokenManager) Verify(tokenString, wantType string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	if typ, _ := mc["type"].(string); typ != wantType {
		return nil, ErrWrongTokenUse
	}

	sub, _ := mc["sub"].(string)
	if sub == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{UserID: sub}
	claims.Email, _ = mc["email"].(string)
	claims.UserType, _ = mc["user_type"].(string)
	if exp, ok := mc["exp"].(float64); ok {
		t := time.Unix(int64(exp), 0)
		claims.Exp = &t
	}
	return claims, nil
}
