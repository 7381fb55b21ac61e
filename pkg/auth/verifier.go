package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the verified identity claim set handed to handlers.
type Claims struct {
	Subject   string
	Username  string
	Email     string
	TokenUse  string
	ExpiresAt time.Time
}

// TokenVerifier checks a raw session token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Claims, error)
}

// idTokenClaims is the wire shape of a Cognito ID token.
type idTokenClaims struct {
	jwt.RegisteredClaims
	TokenUse string `json:"token_use"`
	Username string `json:"cognito:username"`
	Email    string `json:"email"`
}

// CognitoVerifier validates Cognito ID tokens: RS256 signature against the
// user pool's JWKS, expiry, issuer, audience, and token_use.
type CognitoVerifier struct {
	keys     *KeySet
	issuer   string
	clientID string
}

// NewCognitoVerifier builds a verifier for one user pool. endpoint overrides
// the issuer base URL (tests); pass "" to target the regional Cognito host.
func NewCognitoVerifier(region, userPoolID, clientID, endpoint string) *CognitoVerifier {
	base := endpoint
	if base == "" {
		base = fmt.Sprintf("https://cognito-idp.%s.amazonaws.com", region)
	}
	issuer := fmt.Sprintf("%s/%s", base, userPoolID)

	return &CognitoVerifier{
		keys:     NewKeySet(issuer + "/.well-known/jwks.json"),
		issuer:   issuer,
		clientID: clientID,
	}
}

func (v *CognitoVerifier) Verify(ctx context.Context, tokenStr string) (*Claims, error) {
	claims := &idTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.keys.Key(ctx, kid)
	},
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithIssuer(v.issuer),
		jwt.WithAudience(v.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("verify token: token is not valid")
	}

	if claims.TokenUse != "id" {
		return nil, fmt.Errorf("verify token: unexpected token_use %q", claims.TokenUse)
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return &Claims{
		Subject:   claims.Subject,
		Username:  claims.Username,
		Email:     claims.Email,
		TokenUse:  claims.TokenUse,
		ExpiresAt: expiresAt,
	}, nil
}
