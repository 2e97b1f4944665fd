// Package authorization holds the OAuth 2 and OpenID Connect events. An
// authorization provider listens for them and answers with tokens.
package authorization

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// OAuth2AuthorizeEvent asks for an OAuth 2 access token.
type OAuth2AuthorizeEvent struct {
	events.Base
	events.Request[*types.TokenInfo]
	config *types.OAuth2Authorization
}

// NewOAuth2AuthorizeEvent requires the authorization settings.
func NewOAuth2AuthorizeEvent(config *types.OAuth2Authorization) (*OAuth2AuthorizeEvent, error) {
	if err := argutil.Object("config", config); err != nil {
		return nil, err
	}
	return &OAuth2AuthorizeEvent{Base: events.NewBase(eventtypes.OAuth2Authorize), config: config}, nil
}

// Config returns the authorization settings.
func (e *OAuth2AuthorizeEvent) Config() *types.OAuth2Authorization { return e.config }

// Detail implements events.Detailer.
func (e *OAuth2AuthorizeEvent) Detail() interface{} {
	return map[string]interface{}{
		"grantType":        e.config.GrantType,
		"clientId":         e.config.ClientID,
		"clientSecret":     e.config.ClientSecret,
		"authorizationUri": e.config.AuthorizationURI,
	}
}

// OAuth2Authorize performs an OAuth 2 authorization through whichever
// provider listens on target. A nil token means nobody handled it.
func OAuth2Authorize(ctx context.Context, target events.Target, config *types.OAuth2Authorization) (*types.TokenInfo, error) {
	e, err := NewOAuth2AuthorizeEvent(config)
	if err != nil {
		return nil, err
	}
	return events.Call[*types.TokenInfo](ctx, target, e)
}

// RemoveTokenEvent asks a provider to forget cached tokens of a client.
// It serves both OAuth2.removeToken and Oidc.removeTokens.
type RemoveTokenEvent struct {
	events.Base
	events.Request[events.Void]
	clientID         string
	authorizationURI string
}

func newRemoveTokenEvent(t events.EventType, clientID, authorizationURI string) (*RemoveTokenEvent, error) {
	if err := argutil.First(
		argutil.String("clientId", clientID),
		argutil.String("authorizationUri", authorizationURI),
	); err != nil {
		return nil, err
	}
	return &RemoveTokenEvent{Base: events.NewBase(t), clientID: clientID, authorizationURI: authorizationURI}, nil
}

// NewOAuth2RemoveTokenEvent requires the client id and authorization URI.
func NewOAuth2RemoveTokenEvent(clientID, authorizationURI string) (*RemoveTokenEvent, error) {
	return newRemoveTokenEvent(eventtypes.OAuth2RemoveToken, clientID, authorizationURI)
}

// NewOidcRemoveTokensEvent requires the client id and authorization URI.
func NewOidcRemoveTokensEvent(clientID, authorizationURI string) (*RemoveTokenEvent, error) {
	return newRemoveTokenEvent(eventtypes.OidcRemoveTokens, clientID, authorizationURI)
}

func (e *RemoveTokenEvent) ClientID() string         { return e.clientID }
func (e *RemoveTokenEvent) AuthorizationURI() string { return e.authorizationURI }

// Detail implements events.Detailer.
func (e *RemoveTokenEvent) Detail() interface{} {
	return map[string]interface{}{"clientId": e.clientID, "authorizationUri": e.authorizationURI}
}

// OAuth2RemoveToken removes the cached OAuth 2 token of a client.
func OAuth2RemoveToken(ctx context.Context, target events.Target, clientID, authorizationURI string) error {
	e, err := NewOAuth2RemoveTokenEvent(clientID, authorizationURI)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// OidcAuthorizeEvent asks for OpenID Connect tokens.
type OidcAuthorizeEvent struct {
	events.Base
	events.Request[[]*types.OidcTokenInfo]
	config *types.OAuth2Authorization
}

// NewOidcAuthorizeEvent requires the authorization settings.
func NewOidcAuthorizeEvent(config *types.OAuth2Authorization) (*OidcAuthorizeEvent, error) {
	if err := argutil.Object("config", config); err != nil {
		return nil, err
	}
	return &OidcAuthorizeEvent{Base: events.NewBase(eventtypes.OidcAuthorize), config: config}, nil
}

// Config returns the authorization settings.
func (e *OidcAuthorizeEvent) Config() *types.OAuth2Authorization { return e.config }

// Detail implements events.Detailer.
func (e *OidcAuthorizeEvent) Detail() interface{} {
	return map[string]interface{}{
		"clientId":  e.config.ClientID,
		"issuerUri": e.config.IssuerURI,
		"secret":    e.config.ClientSecret,
	}
}

// OidcAuthorize performs an OIDC authorization. Implicit flows may return
// several tokens.
func OidcAuthorize(ctx context.Context, target events.Target, config *types.OAuth2Authorization) ([]*types.OidcTokenInfo, error) {
	e, err := NewOidcAuthorizeEvent(config)
	if err != nil {
		return nil, err
	}
	return events.Call[[]*types.OidcTokenInfo](ctx, target, e)
}

// OidcRemoveTokens removes the cached OIDC tokens of a client.
func OidcRemoveTokens(ctx context.Context, target events.Target, clientID, authorizationURI string) error {
	e, err := NewOidcRemoveTokensEvent(clientID, authorizationURI)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// TokensReadyEvent announces tokens obtained outside a pending authorize
// call, e.g. from a popup that completed later.
type TokensReadyEvent struct {
	events.Base
	tokens []*types.OidcTokenInfo
	state  string
}

// NewTokensReadyEvent requires the token list and the state it answers.
func NewTokensReadyEvent(tokens []*types.OidcTokenInfo, state string) (*TokensReadyEvent, error) {
	if err := argutil.First(
		argutil.Objects("tokens", tokens),
		argutil.String("state", state),
	); err != nil {
		return nil, err
	}
	return &TokensReadyEvent{Base: events.NewBase(eventtypes.OidcTokensReady), tokens: tokens, state: state}, nil
}

func (e *TokensReadyEvent) Tokens() []*types.OidcTokenInfo { return e.tokens }
func (e *TokensReadyEvent) State() string                  { return e.state }

// Detail implements events.Detailer.
func (e *TokensReadyEvent) Detail() interface{} {
	return map[string]interface{}{"tokens": len(e.tokens), "state": e.state}
}

// NotifyTokensReady dispatches a TokensReadyEvent.
func NotifyTokensReady(ctx context.Context, target events.Target, tokens []*types.OidcTokenInfo, state string) error {
	e, err := NewTokensReadyEvent(tokens, state)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}
