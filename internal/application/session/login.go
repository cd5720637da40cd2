package session

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/hys-retail/storedesk/internal/domain/store"
	"github.com/hys-retail/storedesk/internal/shared/errors"
	"github.com/hys-retail/storedesk/internal/shared/logger"
)

// StoreLookup finds the store a login names.
type StoreLookup interface {
	GetByID(ctx context.Context, id string) (*store.Store, error)
}

type StoreLoginCommand struct {
	StoreID string
}

type StoreLoginResult struct {
	StoreID string
	Cookie  CookieSpec
}

// StoreLoginUseCase starts a session for a known, active store.
type StoreLoginUseCase struct {
	stores StoreLookup
	issuer *Issuer
	logger logger.Interface
}

func NewStoreLoginUseCase(stores StoreLookup, issuer *Issuer, logger logger.Interface) *StoreLoginUseCase {
	return &StoreLoginUseCase{stores: stores, issuer: issuer, logger: logger}
}

func (uc *StoreLoginUseCase) Execute(ctx context.Context, cmd StoreLoginCommand) (*StoreLoginResult, error) {
	storeID := strings.TrimSpace(cmd.StoreID)
	if storeID == "" {
		return nil, errors.NewValidationError("storeId required")
	}
	if !store.ValidID(storeID) {
		return nil, errors.NewUnauthorizedError("malformed store id")
	}

	s, err := uc.stores.GetByID(ctx, storeID)
	if err != nil {
		if stderrors.Is(err, store.ErrNotFound) {
			uc.logger.Warnw("login for unknown store", "store_id", storeID)
			return nil, errors.NewUnauthorizedError("unknown store")
		}
		uc.logger.Errorw("failed to look up store", "store_id", storeID, "error", err)
		return nil, errors.NewUpstreamError("get store", err)
	}
	if !s.IsActive() {
		uc.logger.Warnw("login for inactive store", "store_id", storeID)
		return nil, errors.NewUnauthorizedError("inactive store")
	}

	cookie, err := uc.issuer.Issue(storeID)
	if err != nil {
		uc.logger.Errorw("failed to issue session", "store_id", storeID, "error", err)
		return nil, err
	}

	uc.logger.Infow("store session issued", "store_id", storeID)
	return &StoreLoginResult{StoreID: storeID, Cookie: cookie}, nil
}

type AdminLoginCommand struct {
	Password string
}

type AdminLoginResult struct {
	Token string
}

// AdminLoginUseCase checks the admin secret. The returned token is the secret
// itself, which clients send back in the admin header.
type AdminLoginUseCase struct {
	guard  *Guard
	logger logger.Interface
}

func NewAdminLoginUseCase(guard *Guard, logger logger.Interface) *AdminLoginUseCase {
	return &AdminLoginUseCase{guard: guard, logger: logger}
}

func (uc *AdminLoginUseCase) Execute(_ context.Context, cmd AdminLoginCommand) (*AdminLoginResult, error) {
	password := strings.TrimSpace(cmd.Password)
	if password == "" {
		return nil, errors.NewValidationError("Password required")
	}

	if _, err := uc.guard.ResolveAdmin(password); err != nil {
		if errors.IsSecurityEvent(err) {
			uc.logger.Warnw("admin login rejected")
		}
		return nil, err
	}

	uc.logger.Infow("admin login succeeded")
	return &AdminLoginResult{Token: password}, nil
}
