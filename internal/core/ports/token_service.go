package ports

import "github.com/userhive/accounts-api/internal/core/domain"

// TokenService issues and verifies signed bearer tokens. Tokens are
// self-contained: no server-side state backs them, so a token stays valid
// until its encoded expiry.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}
