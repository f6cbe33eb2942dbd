package catalog

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
)

var (
	ErrMissingToken = errors.New("catalog: authenticated request without access token")
	ErrTokenExpired = errors.New("catalog: access token expired")
)

// AuthSession carries the credentials of one wizard session. It is built when the wizard
// opens and dropped when it closes; nothing is read from process-wide state.
type AuthSession struct {
	AnonKey     string
	AccessToken string
	UserID      string
}

// Headers builds the data API request headers. The access token is only required when
// authRequired is set, but a present token is always forwarded.
func (a AuthSession) Headers(authRequired bool) (http.Header, error) {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Accept", "application/json")
	if a.AnonKey != "" {
		h.Set("apikey", a.AnonKey)
	}

	if a.AccessToken == "" {
		if authRequired {
			return nil, ErrMissingToken
		}
		return h, nil
	}
	if tokenExpired(a.AccessToken, time.Now()) {
		if authRequired {
			return nil, ErrTokenExpired
		}
		// an expired optional token would only turn a public read into a 401
		return h, nil
	}
	h.Set("Authorization", "Bearer "+a.AccessToken)
	return h, nil
}

// tokenExpired inspects the exp claim without verifying the signature; the data API verifies it.
// Tokens that are not JWTs are treated as opaque and never expire here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return false
	}
	if _, ok := claims["exp"]; !ok {
		return false
	}
	return !claims.VerifyExpiresAt(now.Unix(), true)
}
