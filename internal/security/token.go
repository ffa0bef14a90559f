package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SubjectClaim is the claim name carrying the subject employee id.
const SubjectClaim = "_id"

// TokenConfig parameterizes token issuing and validation. ExpiresIn is a
// deployment setting (8h in the reference deployment), not a constant.
type TokenConfig struct {
	Issuer    string
	Audience  string
	Secret    string
	ExpiresIn time.Duration
}

// Claim is a named string value cryptographically bound to a token.
type Claim struct {
	Name  string
	Value string
}

// ErrInvalidToken covers every validation failure: bad signature, wrong
// issuer or audience, expired. Callers treat it as failed authentication,
// not a fatal error.
var ErrInvalidToken = errors.New("invalid token")

// IssueToken signs an HS256 token binding the given claims plus issuer,
// audience and an expiry of now + cfg.ExpiresIn.
func IssueToken(cfg TokenConfig, claims ...Claim) (string, error) {
	now := time.Now()
	mapClaims := jwt.MapClaims{
		"iss": cfg.Issuer,
		"aud": cfg.Audience,
		"exp": now.Add(cfg.ExpiresIn).Unix(),
		"iat": now.Unix(),
	}
	for _, c := range claims {
		mapClaims[c.Name] = c.Value
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, mapClaims)
	return token.SignedString([]byte(cfg.Secret))
}

// ValidateToken verifies signature, issuer, audience and expiry, and returns
// the embedded claims on success.
func ValidateToken(tokenStr string, cfg TokenConfig) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.Secret), nil
	},
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// StringClaim extracts a named string claim; ok is false when the claim is
// absent or not a string.
func StringClaim(claims jwt.MapClaims, name string) (string, bool) {
	v, ok := claims[name].(string)
	return v, ok
}
