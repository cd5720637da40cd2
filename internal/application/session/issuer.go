// Package session issues and verifies store sessions and resolves the admin
// principal.
package session

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/hys-retail/storedesk/internal/infrastructure/auth"
	"github.com/hys-retail/storedesk/internal/shared/errors"
)

// DefaultCookieName is the name of the store session cookie.
const DefaultCookieName = "session_store"

// TokenEncoder signs a session token for a store.
type TokenEncoder interface {
	Encode(storeID string) (string, error)
	TTL() time.Duration
}

// CookieSpec carries the attributes of the session cookie.
type CookieSpec struct {
	Name     string
	Value    string
	HTTPOnly bool
	Secure   bool
	SameSite http.SameSite
	Path     string
	Domain   string
	MaxAge   int
}

// CookieOptions configures the cookie attributes that vary per deployment.
type CookieOptions struct {
	Name     string
	Secure   bool
	SameSite http.SameSite
	Path     string
	Domain   string
}

type Issuer struct {
	encoder TokenEncoder
	opts    CookieOptions
}

func NewIssuer(encoder TokenEncoder, opts CookieOptions) *Issuer {
	if opts.Name == "" {
		opts.Name = DefaultCookieName
	}
	if opts.Path == "" {
		opts.Path = "/"
	}
	if opts.SameSite == 0 {
		opts.SameSite = http.SameSiteLaxMode
	}
	return &Issuer{encoder: encoder, opts: opts}
}

// CookieName is the cookie the verifier reads.
func (i *Issuer) CookieName() string {
	return i.opts.Name
}

// Issue signs a token for storeID and returns the cookie that carries it.
func (i *Issuer) Issue(storeID string) (CookieSpec, error) {
	token, err := i.encoder.Encode(storeID)
	switch {
	case stderrors.Is(err, auth.ErrMissingSecret):
		return CookieSpec{}, errors.NewMisconfiguredError("auth.session.secret")
	case stderrors.Is(err, auth.ErrEmptyStoreID):
		return CookieSpec{}, errors.NewValidationError("storeId required")
	case err != nil:
		return CookieSpec{}, errors.NewInternalError("failed to issue session", err.Error())
	}

	spec := i.base()
	spec.Value = token
	spec.MaxAge = int(i.encoder.TTL() / time.Second)
	return spec, nil
}

// Expired returns a cookie that deletes the session on the client.
func (i *Issuer) Expired() CookieSpec {
	spec := i.base()
	spec.MaxAge = -1
	return spec
}

func (i *Issuer) base() CookieSpec {
	return CookieSpec{
		Name:     i.opts.Name,
		HTTPOnly: true,
		Secure:   i.opts.Secure,
		SameSite: i.opts.SameSite,
		Path:     i.opts.Path,
		Domain:   i.opts.Domain,
	}
}
