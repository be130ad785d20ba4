package auth

import (
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the verified proof that a request comes from an
// authenticated principal. It carries only the token identifier used
// to look up the persisted user record.
type Identity struct {
	TokenIdentifier string
}

type Claims struct {
	TokenIdentifier string `json:"tokenIdentifier"`
	jwt.RegisteredClaims
}

// Verifier issues and verifies identity tokens. It is constructed in
// main and passed to whatever needs it; the signing secret never lives
// in a package variable.
type Verifier struct {
	secret []byte
	ttl    time.Duration
}

func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret, ttl: 24 * time.Hour}
}

// Issue creates a signed token for the given token identifier.
func (v *Verifier) Issue(tokenIdentifier string) (string, error) {
	if len(v.secret) == 0 {
		log.Println("CRITICAL: JWT_SECRET is not configured. Cannot generate token.")
		return "", errors.New("JWT_SECRET is not configured")
	}
	claims := &Claims{
		TokenIdentifier: tokenIdentifier,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(v.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// Verify validates a token string and returns the identity it proves.
func (v *Verifier) Verify(tokenStr string) (*Identity, error) {
	if len(v.secret) == 0 {
		log.Println("CRITICAL: JWT_SECRET is not configured. Cannot validate token.")
		return nil, errors.New("JWT_SECRET is not configured")
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	if claims.TokenIdentifier == "" {
		return nil, errors.New("token carries no identity")
	}

	return &Identity{TokenIdentifier: claims.TokenIdentifier}, nil
}
