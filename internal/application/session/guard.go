package session

import (
	"crypto/subtle"
	stderrors "errors"

	"github.com/hys-retail/storedesk/internal/domain/access"
	"github.com/hys-retail/storedesk/internal/infrastructure/auth"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// TokenDecoder verifies a session token and returns its store.
type TokenDecoder interface {
	Decode(token string) (string, error)
}

// Guard resolves the principal of a request. Only the signed session
// cookie can authenticate a store.
type Guard struct {
	decoder     TokenDecoder
	adminSecret []byte
	logger      logger.Interface
}

func NewGuard(decoder TokenDecoder, adminSecret string, logger logger.Interface) *Guard {
	return &Guard{
		decoder:     decoder,
		adminSecret: []byte(adminSecret),
		logger:      logger,
	}
}

// ResolveStore verifies the session cookie value.
func (g *Guard) ResolveStore(token string) (access.Principal, error) {
	if token == "" {
		return access.Principal{}, errors.NewUnauthorizedError("missing session")
	}

	storeID, err := g.decoder.Decode(token)
	if err != nil {
		if stderrors.Is(err, auth.ErrMissingSecret) {
			g.logger.Errorw("session secret is not configured")
			return access.Principal{}, errors.NewMisconfiguredError("auth.session.secret")
		}
		g.logger.Debugw("rejected session token", "error", err)
		return access.Principal{}, errors.NewInvalidSessionError(err.Error())
	}

	return access.StorePrincipal(storeID), nil
}

// ResolveAdmin succeeds iff presented equals the configured admin secret.
func (g *Guard) ResolveAdmin(presented string) (access.Principal, error) {
	if len(g.adminSecret) == 0 {
		g.logger.Errorw("admin secret is not configured")
		return access.Principal{}, errors.NewMisconfiguredError("auth.admin.secret")
	}
	if presented == "" {
		return access.Principal{}, errors.NewUnauthorizedError("missing admin secret")
	}
	if subtle.ConstantTimeCompare([]byte(presented), g.adminSecret) != 1 {
		return access.Principal{}, errors.NewInvalidAdminSecretError()
	}
	return access.AdminPrincipal(), nil
}
