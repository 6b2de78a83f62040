package aws

import (
	"context"
	"fmt"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
	apperrors "github.com/HackathonFIAPX/hackathon-fiapx-admin/pkg/errors"
)

// CognitoVerifier validates user-pool JWTs against the pool's JWKS. The key
// set is fetched once and refreshed in the background by keyfunc.
type CognitoVerifier struct {
	jwks     keyfunc.Keyfunc
	issuer   string
	clientID string
}

func NewCognitoVerifier(ctx context.Context, region, userPoolID, clientID string) (*CognitoVerifier, error) {
	issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", region, userPoolID)
	jwksURL := issuer + "/.well-known/jwks.json"

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to load JWKS from %s: %w", jwksURL, err)
	}

	return &CognitoVerifier{
		jwks:     jwks,
		issuer:   issuer,
		clientID: clientID,
	}, nil
}

func (v *CognitoVerifier) Validate(ctx context.Context, token string, use repositories.TokenUse) (*repositories.TokenClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, v.jwks.Keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
	)
	if err != nil {
		return nil, &apperrors.UnauthorizedError{Reason: fmt.Sprintf("invalid token: %v", err)}
	}

	return checkCognitoClaims(claims, use, v.clientID)
}

// checkCognitoClaims runs the Cognito-specific checks the generic JWT parse
// does not cover: token_use must match, ID tokens carry the app client in
// aud, access tokens in client_id.
func checkCognitoClaims(claims jwt.MapClaims, use repositories.TokenUse, clientID string) (*repositories.TokenClaims, error) {
	tokenUse, _ := claims["token_use"].(string)
	if tokenUse != string(use) {
		return nil, &apperrors.UnauthorizedError{
			Reason: fmt.Sprintf("incorrect token use: expected %s, received %s", use, tokenUse),
		}
	}

	switch use {
	case repositories.TokenUseID:
		audience, err := claims.GetAudience()
		if err != nil || !containsAudience(audience, clientID) {
			return nil, &apperrors.UnauthorizedError{Reason: "id token does not belong to client"}
		}
	case repositories.TokenUseAccess:
		if tokenClientID, _ := claims["client_id"].(string); tokenClientID != clientID {
			return nil, &apperrors.UnauthorizedError{Reason: "access token does not belong to client"}
		}
	}

	username, _ := claims["username"].(string)
	if username == "" {
		username, _ = claims["cognito:username"].(string)
	}
	tokenClientID, _ := claims["client_id"].(string)

	return &repositories.TokenClaims{
		ClientID: tokenClientID,
		Username: username,
		Raw:      claims,
	}, nil
}

func containsAudience(audience jwt.ClaimStrings, clientID string) bool {
	for _, aud := range audience {
		if aud == clientID {
			return true
		}
	}
	return false
}
