package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Session is the signed-in state restored from a provider-issued token.
type Session struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	Name      string `json:"name,omitempty"`
	ExpiresAt int64  `json:"expiresAt"`
}

// Provider is the identity-provider port. The core never mints or stores
// credentials; it only restores sessions from tokens the provider issued and
// asks the provider to revoke them on sign-out.
type Provider interface {
	SessionFromToken(token string) (*Session, error)
	SignOut(ctx context.Context, token string) error
}

type Config struct {
	// Secret is the HMAC secret the provider signs session tokens with.
	Secret string
	// SignOutURL is the provider's revocation endpoint. Empty means the
	// provider has none and sign-out is local-only.
	SignOutURL string
}

// HTTPProvider verifies provider tokens locally and talks to the provider's
// REST API for revocation.
type HTTPProvider struct {
	secret     []byte
	signOutURL string
	client     *resty.Client
}

func NewHTTPProvider(cfg Config) *HTTPProvider {
	return &HTTPProvider{
		secret:     []byte(cfg.Secret),
		signOutURL: cfg.SignOutURL,
		client:     resty.New(),
	}
}

// SessionFromToken decodes and verifies a session token. Any failure means
// "no session" to callers; it is never fatal.
func (p *HTTPProvider) SessionFromToken(tokenString string) (*Session, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	session := &Session{}
	if userID, ok := claims["user_id"].(string); ok {
		session.UserID = userID
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		session.Name = name
	}
	if exp, ok := claims["exp"].(float64); ok {
		session.ExpiresAt = int64(exp)
		if time.Now().Unix() >= session.ExpiresAt {
			return nil, fmt.Errorf("session token expired")
		}
	}
	if session.UserID == "" {
		return nil, fmt.Errorf("session token has no user id")
	}
	return session, nil
}

// SignOut asks the provider to revoke the token. The caller surfaces failures
// as a notification; there is no retry.
func (p *HTTPProvider) SignOut(ctx context.Context, tokenString string) error {
	if p.signOutURL == "" {
		return nil
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(map[string]string{"token": tokenString}).
		Post(p.signOutURL)
	if err != nil {
		return fmt.Errorf("sign out request failed: %w", err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("sign out failed with status %d: %s", resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
