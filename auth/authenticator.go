package auth

import (
	"context"
	"slices"
	"strings"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/jrsteele09/go-session-state/internal/config"
	"github.com/jrsteele09/go-session-state/internal/errors"
	"github.com/jrsteele09/go-session-state/internal/utils"
	"github.com/jrsteele09/go-session-state/sessionstate"
	"github.com/jrsteele09/go-session-state/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
)

// NowTimeFunc returns the current time. It can be overridden in tests.
var NowTimeFunc = time.Now

var validMethods = []string{"HS256", "HS384", "HS512"}

// Authenticator applies the outcome of a login, an explicit log-out or a
// tenant switch to a session store. It performs no network I/O: the token
// has already been obtained by the caller.
type Authenticator struct {
	store  *sessionstate.Store
	config config.SessionConfig
}

func NewAuthenticator(store *sessionstate.Store, cfg config.SessionConfig) *Authenticator {
	return &Authenticator{
		store:  store,
		config: cfg,
	}
}

// SignIn validates the access token, derives the user and authorized tenants
// from its claims and stores them together with the token. When nothing is
// selected yet, the tenant named by the token's "tenant" claim is selected.
func (a *Authenticator) SignIn(ctx context.Context, token *oauth2.Token) (*users.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if token == nil || strings.TrimSpace(token.AccessToken) == "" {
		return nil, errors.Wrapf(errors.ErrInvalidToken, "[Authenticator SignIn] missing access token")
	}
	if !token.Expiry.IsZero() && NowTimeFunc().After(token.Expiry) {
		return nil, errors.Wrapf(errors.ErrTokenExpired, "[Authenticator SignIn] token expired at %s", token.Expiry.Format(time.RFC3339))
	}

	claims, err := a.parse(token.AccessToken)
	if err != nil {
		return nil, errors.Wrapf(err, "[Authenticator SignIn] access token")
	}

	authTenants, tenantRoles := tenantsFromClaims(claims)
	user := userFromClaims(claims, authTenants, tenantRoles)

	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		idClaims, err := a.parse(rawIDToken)
		if err != nil {
			return nil, errors.Wrapf(err, "[Authenticator SignIn] id token")
		}
		overlayIdentity(user, idClaims)
	}

	if user.ID == "" {
		return nil, errors.Wrapf(errors.ErrInvalidToken, "[Authenticator SignIn] token has no subject")
	}

	a.store.SignIn(user, utils.Ptr(token.AccessToken), authTenants)
	log.Info().Str("user_id", user.ID).Int("tenants", len(authTenants)).Msg("Signed in")

	a.applyDefaults(utils.StringFrom(claims, claimTenant))
	return user, nil
}

// SignOut clears the signed-in state. The selected tenant is kept.
func (a *Authenticator) SignOut(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	userID := ""
	if u := a.store.User(); u != nil {
		userID = u.ID
	}
	a.store.LogOut()
	log.Info().Str("user_id", userID).Msg("Signed out")
	return nil
}

// SwitchTenant selects one of the signed-in user's authorized tenants.
func (a *Authenticator) SwitchTenant(ctx context.Context, tenantID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !a.store.Snapshot().Authenticated() {
		return errors.Wrapf(errors.ErrNotAuthenticated, "[Authenticator SwitchTenant] tenant %q", tenantID)
	}
	if err := a.store.SelectAuthorizedTenant(tenantID); err != nil {
		log.Err(err).Str("tenant", tenantID).Msg("Tenant switch refused")
		return err
	}
	return nil
}

func (a *Authenticator) applyDefaults(tokenTenant string) {
	if tokenTenant != "" && a.store.SelectedTenant() == nil {
		if err := a.store.SelectAuthorizedTenant(tokenTenant); err != nil {
			log.Warn().Err(err).Str("tenant", tokenTenant).Msg("Token tenant is not authorized")
		}
	}
	if !a.store.SelectionConsistent() {
		log.Warn().Str("tenant", a.store.SelectedTenant().ID).Msg("Selected tenant is not in the authorized tenants")
	}
	if section := a.config.GetDefaultSection(); section != "" && a.store.CurrentSection() == nil {
		a.store.SetCurrentSection(utils.Ptr(sessionstate.Section(section)))
	}
}

// parse verifies rawToken with the configured HMAC secret. Without a secret
// the signature is not checked, but expiry, issuer and audience still are.
func (a *Authenticator) parse(rawToken string) (jwtlib.MapClaims, error) {
	issuer := a.config.GetTokenIssuer()
	audience := a.config.GetTokenAudience()
	secret := a.config.GetTokenSecret()

	if secret == "" {
		return a.parseUnverified(rawToken, issuer, audience)
	}

	opts := []jwtlib.ParserOption{
		jwtlib.WithValidMethods(validMethods),
		jwtlib.WithTimeFunc(NowTimeFunc),
	}
	if issuer != "" {
		opts = append(opts, jwtlib.WithIssuer(issuer))
	}
	if audience != "" {
		opts = append(opts, jwtlib.WithAudience(audience))
	}

	token, err := jwtlib.NewParser(opts...).ParseWithClaims(rawToken, jwtlib.MapClaims{}, func(*jwtlib.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, mapJWTError(err)
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.ErrInvalidToken
	}
	return claims, nil
}

func (a *Authenticator) parseUnverified(rawToken, issuer, audience string) (jwtlib.MapClaims, error) {
	token, _, err := jwtlib.NewParser().ParseUnverified(rawToken, jwtlib.MapClaims{})
	if err != nil {
		return nil, mapJWTError(err)
	}
	claims, ok := token.Claims.(jwtlib.MapClaims)
	if !ok {
		return nil, errors.ErrInvalidToken
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidToken, "exp claim")
	}
	if exp != nil && !NowTimeFunc().Before(exp.Time) {
		return nil, errors.ErrTokenExpired
	}
	if issuer != "" {
		if iss, _ := claims.GetIssuer(); iss != issuer {
			return nil, errors.Wrapf(errors.ErrInvalidToken, "issuer %q", iss)
		}
	}
	if audience != "" {
		aud, _ := claims.GetAudience()
		if !slices.Contains(aud, audience) {
			return nil, errors.Wrapf(errors.ErrInvalidToken, "audience %v", aud)
		}
	}
	return claims, nil
}

func mapJWTError(err error) error {
	if errors.Is(err, jwtlib.ErrTokenExpired) {
		return errors.Wrapf(errors.ErrTokenExpired, "%v", err)
	}
	return errors.Wrapf(errors.ErrInvalidToken, "%v", err)
}
