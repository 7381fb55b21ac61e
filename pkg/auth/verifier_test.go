package auth

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	testPoolID   = "eu-west-1_TestPool"
	testClientID = "test-client-id"
	testKid      = "test-key-1"
)

func newJWKSServer(t *testing.T, pub *rsa.PublicKey) *httptest.Server {
	t.Helper()

	doc := jwkDocument{Keys: []jwk{{
		Kty: "RSA",
		Kid: testKid,
		Use: "sig",
		N:   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
		E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
	}}}

	mux := http.NewServeMux()
	mux.HandleFunc("/"+testPoolID+"/.well-known/jwks.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(doc); err != nil {
			t.Errorf("encode jwks: %v", err)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func signToken(t *testing.T, key *rsa.PrivateKey, kid string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	token.Header["kid"] = kid

	signed, err := token.SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestCognitoVerifier(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("generate key: %v", err)
	}

	server := newJWKSServer(t, &key.PublicKey)
	verifier := NewCognitoVerifier("eu-west-1", testPoolID, testClientID, server.URL)

	issuer := server.URL + "/" + testPoolID
	baseClaims := func() jwt.MapClaims {
		return jwt.MapClaims{
			"iss":              issuer,
			"aud":              testClientID,
			"sub":              "user-sub-1",
			"exp":              time.Now().Add(time.Hour).Unix(),
			"token_use":        "id",
			"cognito:username": "moviefan",
			"email":            "fan@example.com",
		}
	}

	t.Run("valid token", func(t *testing.T) {
		claims, err := verifier.Verify(context.Background(), signToken(t, key, testKid, baseClaims()))
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if claims.Username != "moviefan" {
			t.Errorf("username = %q, want moviefan", claims.Username)
		}
		if claims.Email != "fan@example.com" {
			t.Errorf("email = %q", claims.Email)
		}
		if claims.Subject != "user-sub-1" {
			t.Errorf("subject = %q", claims.Subject)
		}
	})

	invalid := []struct {
		name   string
		mutate func(jwt.MapClaims)
	}{
		{"expired", func(c jwt.MapClaims) { c["exp"] = time.Now().Add(-time.Hour).Unix() }},
		{"missing expiry", func(c jwt.MapClaims) { delete(c, "exp") }},
		{"wrong issuer", func(c jwt.MapClaims) { c["iss"] = "https://evil.example.com/" + testPoolID }},
		{"wrong audience", func(c jwt.MapClaims) { c["aud"] = "another-client" }},
		{"access token", func(c jwt.MapClaims) { c["token_use"] = "access" }},
	}

	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			claims := baseClaims()
			tc.mutate(claims)
			if _, err := verifier.Verify(context.Background(), signToken(t, key, testKid, claims)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}

	t.Run("unknown kid", func(t *testing.T) {
		if _, err := verifier.Verify(context.Background(), signToken(t, key, "rotated-away", baseClaims())); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other, err := rsa.GenerateKey(rand.Reader, 2048)
		if err != nil {
			t.Fatalf("generate key: %v", err)
		}
		if _, err := verifier.Verify(context.Background(), signToken(t, other, testKid, baseClaims())); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := verifier.Verify(context.Background(), "not.a.token"); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
