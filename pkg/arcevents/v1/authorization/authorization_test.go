package authorization_test

import (
	"context"
	"errors"
	"testing"

	"github.com/arc-labs/arcevents/internal/eventtest"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/authorization"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOAuth2Authorize_ReturnsProviderToken(t *testing.T) {
	target := eventtest.NewTarget()
	token := &types.TokenInfo{AccessToken: "abc", TokenType: "Bearer"}
	rec := eventtest.Respond(target, eventtypes.OAuth2Authorize, token)

	config := &types.OAuth2Authorization{GrantType: "implicit", ClientID: "client"}
	got, err := authorization.OAuth2Authorize(context.Background(), target, config)
	require.NoError(t, err)
	assert.Same(t, token, got)

	e := rec.Last().(*authorization.OAuth2AuthorizeEvent)
	assert.Same(t, config, e.Config())
}

func TestOAuth2Authorize_Unhandled(t *testing.T) {
	got, err := authorization.OAuth2Authorize(context.Background(), eventtest.NewTarget(), &types.OAuth2Authorization{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOAuth2Authorize_ProviderErrorPropagates(t *testing.T) {
	target := eventtest.NewTarget()
	providerErr := errors.New("user closed the window")
	eventtest.Fail(target, eventtypes.OAuth2Authorize, providerErr)

	_, err := authorization.OAuth2Authorize(context.Background(), target, &types.OAuth2Authorization{})
	assert.Same(t, providerErr, err)
}

func TestOAuth2Authorize_RequiresConfig(t *testing.T) {
	_, err := authorization.OAuth2Authorize(context.Background(), eventtest.NewTarget(), nil)
	assert.EqualError(t, err, "Expected config argument as object.")
}

func TestRemoveTokenEvents(t *testing.T) {
	target := eventtest.NewTarget()
	oauth := eventtest.Respond(target, eventtypes.OAuth2RemoveToken, events.Void{})
	oidc := eventtest.Respond(target, eventtypes.OidcRemoveTokens, events.Void{})

	ctx := context.Background()
	require.NoError(t, authorization.OAuth2RemoveToken(ctx, target, "c1", "https://auth"))
	require.NoError(t, authorization.OidcRemoveTokens(ctx, target, "c2", "https://issuer"))

	e := oauth.Last().(*authorization.RemoveTokenEvent)
	assert.Equal(t, "c1", e.ClientID())
	assert.Equal(t, "https://auth", e.AuthorizationURI())
	assert.Equal(t, eventtypes.OidcRemoveTokens, oidc.Last().Type())

	assert.EqualError(t, authorization.OAuth2RemoveToken(ctx, target, "", "x"), "Expected clientId argument as string.")
	assert.EqualError(t, authorization.OidcRemoveTokens(ctx, target, "c", ""), "Expected authorizationUri argument as string.")
}

func TestOidcAuthorizeAndTokensReady(t *testing.T) {
	target := eventtest.NewTarget()
	tokens := []*types.OidcTokenInfo{{IDToken: "id"}}
	eventtest.Respond(target, eventtypes.OidcAuthorize, tokens)
	ready := eventtest.Record(target, eventtypes.OidcTokensReady)

	ctx := context.Background()
	got, err := authorization.OidcAuthorize(ctx, target, &types.OAuth2Authorization{ClientID: "c"})
	require.NoError(t, err)
	assert.Equal(t, tokens, got)

	require.NoError(t, authorization.NotifyTokensReady(ctx, target, tokens, "s1"))
	e := ready.Last().(*authorization.TokensReadyEvent)
	assert.Equal(t, tokens, e.Tokens())
	assert.Equal(t, "s1", e.State())

	assert.EqualError(t, authorization.NotifyTokensReady(ctx, target, nil, "s1"), "Expected tokens argument as array.")
}
