// Package access wraps route handlers so that, by the time a handler
// body runs, the caller's identity has been verified, the matching
// user record loaded, and any role requirement checked. Handlers never
// authenticate themselves.
package access

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifeline-app/lifeline-api/internal/auth"
	"github.com/lifeline-app/lifeline-api/internal/models"
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrUserNotFound    = errors.New("no user record matches the verified identity")
	ErrAccessDenied    = errors.New("admin role required")
)

// IdentityVerifier checks a bearer token and returns the identity it
// proves, or an error if the token is missing proof.
type IdentityVerifier interface {
	Verify(token string) (*auth.Identity, error)
}

// UserSource resolves persisted user records. A nil record with a nil
// error means no user matches the identifier.
type UserSource interface {
	FindUserByTokenIdentifier(ctx context.Context, tokenIdentifier string) (*models.User, error)
}

// Context is the augmented per-request context handed to wrapped
// handlers. It is built once per request by augment and never mutated
// afterwards.
type Context struct {
	User models.User
}

// HandlerFunc is a route handler that runs only after access checks
// pass. The resolved user arrives in ac; the gin context keeps its
// usual request/response role.
type HandlerFunc func(c *gin.Context, ac Context)

const contextKey = "access.context"

// Decorator resolves caller identity and user records for wrapped
// handlers. Construct one in main and share it across routes.
type Decorator struct {
	verifier IdentityVerifier
	users    UserSource
}

func New(verifier IdentityVerifier, users UserSource) *Decorator {
	return &Decorator{verifier: verifier, users: users}
}

// Query wraps a read-only handler that requires an authenticated user.
func (d *Decorator) Query(h HandlerFunc) gin.HandlerFunc {
	return d.wrap(h, false)
}

// Mutation wraps a state-changing handler that requires an
// authenticated user.
func (d *Decorator) Mutation(h HandlerFunc) gin.HandlerFunc {
	return d.wrap(h, false)
}

// AdminQuery wraps a read-only handler that additionally requires the
// admin role.
func (d *Decorator) AdminQuery(h HandlerFunc) gin.HandlerFunc {
	return d.wrap(h, true)
}

// AdminMutation wraps a state-changing handler that additionally
// requires the admin role.
func (d *Decorator) AdminMutation(h HandlerFunc) gin.HandlerFunc {
	return d.wrap(h, true)
}

func (d *Decorator) wrap(h HandlerFunc, requireAdmin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Step 1: verified identity for this request.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		identity, err := d.verifier.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": ErrUnauthenticated.Error()})
			return
		}

		// Step 2: the persisted user record for that identity.
		user, err := d.users.FindUserByTokenIdentifier(c.Request.Context(), identity.TokenIdentifier)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load user record"})
			return
		}
		if user == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": ErrUserNotFound.Error()})
			return
		}

		// Step 3: role requirement. An unrecognized stored role fails
		// closed: it never satisfies the admin check.
		if requireAdmin && user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": ErrAccessDenied.Error()})
			return
		}

		ac := augment(c, *user)
		h(c, ac)
	}
}

// augment composes the base request context with the resolved user,
// producing the value handed to the wrapped handler. It also records
// the value on the gin context so code further down the call chain can
// reach it through Current.
func augment(c *gin.Context, user models.User) Context {
	ac := Context{User: user}
	c.Set(contextKey, ac)
	return ac
}

// Current returns the augmented context recorded by a wrapping
// decorator, if any.
func Current(c *gin.Context) (Context, bool) {
	v, ok := c.Get(contextKey)
	if !ok {
		return Context{}, false
	}
	ac, ok := v.(Context)
	return ac, ok
}
