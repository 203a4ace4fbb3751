package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/junaidrashid-git/paintstore-api/models"
)

const (
	AccessTokenTTL = time.Hour
	GuestTokenTTL  = 24 * time.Hour

	RoleUser  = "user"
	RoleGuest = "guest"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Issuer signs and verifies HS256 tokens with one shared secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

func NewIssuer(secret string) *Issuer {
	return &Issuer{secret: []byte(secret), now: time.Now}
}

// IssueAccessToken issues a one hour bearer token for an account.
func (i *Issuer) IssueAccessToken(user models.User) (string, error) {
	now := i.now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"role":  RoleUser,
		"iat":   now.Unix(),
		"exp":   now.Add(AccessTokenTTL).Unix(),
	}
	return i.sign(claims)
}

// IssueGuestToken issues a token naming a shopping session. userID is
// optional; when set the session belongs to that account.
func (i *Issuer) IssueGuestToken(sessionID, userID string) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(GuestTokenTTL)
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"role":       RoleGuest,
		"iat":        now.Unix(),
		"exp":        expires.Unix(),
	}
	if userID != "" {
		claims["sub"] = userID
		claims["role"] = RoleUser
	}
	token, err := i.sign(claims)
	return token, expires, err
}

// Parse verifies tokenString and returns its claims.
func (i *Issuer) Parse(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (i *Issuer) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}
