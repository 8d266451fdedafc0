package identity

import "context"

// NoopProvider accepts any token as an anonymous identity and performs
// no management calls. Used in development setups without a provider.
type NoopProvider struct{}

// NewNoopProvider creates a new noop provider.
func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Verify(_ context.Context, sessionToken string) (*Identity, error) {
	if sessionToken == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: sessionToken}, nil
}

func (p *NoopProvider) DeleteUser(context.Context, string) error {
	return nil
}
