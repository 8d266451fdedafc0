package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snezamha/cms-core/internal/common/config"
)

var (
	ErrInvalidToken     = errors.New("invalid session token")
	ErrExpiredToken     = errors.New("session token has expired")
	ErrInvalidAlgorithm = errors.New("invalid signing algorithm")
	ErrEmptySecretKey   = errors.New("secret key cannot be empty")
	ErrWeakSecretKey    = errors.New("secret key must be at least 32 characters")
)

// Claims represents the session token claims issued by the identity
// provider. The subject is the provider's account identifier.
type Claims struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	ImageURL  string `json:"image_url"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 session tokens and talks to the provider's
// management REST API.
type JWTProvider struct {
	cfg    *config.IdentityConfig
	client *http.Client
}

// NewJWTProvider creates a new JWT-backed identity provider.
func NewJWTProvider(cfg *config.IdentityConfig) (*JWTProvider, error) {
	if cfg.SecretKey == "" {
		return nil, ErrEmptySecretKey
	}
	if len(cfg.SecretKey) < 32 {
		return nil, ErrWeakSecretKey
	}
	return &JWTProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Verify validates a session token and returns the identity it belongs to.
func (p *JWTProvider) Verify(_ context.Context, sessionToken string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(sessionToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidAlgorithm
		}
		return []byte(p.cfg.SecretKey), nil
	}, jwt.WithLeeway(p.cfg.TokenMaxSkew))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		ID:        claims.Subject,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		ImageURL:  claims.ImageURL,
	}, nil
}

// DeleteUser removes the account via the provider's management API. Any
// non-2xx response is reported as an upstream failure; callers keep the
// local row in that case.
func (p *JWTProvider) DeleteUser(ctx context.Context, externalID string) error {
	endpoint := fmt.Sprintf("%s/users/%s", p.cfg.BaseURL, url.PathEscape(externalID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}
	return nil
}

// GenerateToken issues a session token signed with the provider secret.
// Used by tests and local development tooling.
func (p *JWTProvider) GenerateToken(id *Identity, duration time.Duration) (string, error) {
	claims := &Claims{
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		ImageURL:  id.ImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.cfg.SecretKey))
}
