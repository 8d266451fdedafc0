// Package identity integrates the external identity provider that owns
// authentication. The server never stores credentials; it verifies the
// provider's session tokens and mirrors profile data into local user rows.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/snezamha/cms-core/internal/common/config"
)

// Identity describes one authenticated identity-provider account.
type Identity struct {
	// ID is the provider's stable account identifier.
	ID        string
	Email     string
	FirstName string
	LastName  string
	ImageURL  string
}

// Name returns the display name derived from the profile fields.
func (i *Identity) Name() string {
	return strings.TrimSpace(i.FirstName + " " + i.LastName)
}

// Provider is the integration surface of the external identity provider.
type Provider interface {
	// Verify validates a session token and returns the identity it
	// belongs to.
	Verify(ctx context.Context, sessionToken string) (*Identity, error)

	// DeleteUser removes the account from the identity provider via its
	// management API.
	DeleteUser(ctx context.Context, externalID string) error
}

// NewProvider creates a provider based on configuration.
func NewProvider(cfg *config.IdentityConfig) (Provider, error) {
	switch cfg.Provider {
	case "jwt":
		return NewJWTProvider(cfg)
	case "noop":
		return NewNoopProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported identity provider: %s", cfg.Provider)
	}
}
