package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses
	"strings"  // string utilities for prefix checking and trimming

	"github.com/golang-jwt/jwt/v5" // JWT library for parsing and validating tokens
	"github.com/labstack/echo/v4"  // Echo framework used for defining middleware and handlers
)

// JWTAuth returns an Echo middleware that validates a Bearer access token
// and injects the token's username and id claims into the request context.
// The provided secret must match the one used when issuing tokens.  This
// middleware wraps the booking route so that the handler can access the
// authenticated user via `c.Get("username")` and `c.Get("user_id")`.
//
// Failure responses are plain text so that clients see the same bodies the
// API has always produced.
func JWTAuth(secret string) echo.MiddlewareFunc {
	// The outer function returns a middleware function.  Echo executes this
	// once when registering the middleware.
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		// The returned handler is invoked for each incoming HTTP request.
		return func(c echo.Context) error {
			// Read the Authorization header.  A valid header should start
			// with "Bearer " followed by the JWT.  If it doesn't, respond
			// with 401 Unauthorized.
			auth := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.String(http.StatusUnauthorized, "Authorization header missing or invalid")
			}
			// Remove the "Bearer " prefix to obtain the raw token string.
			raw := strings.TrimPrefix(auth, "Bearer ")

			// Parse the token using the HS256 signing method and our secret.
			// The callback provided to jwt.Parse supplies the signing key and
			// ensures that the algorithm matches what we expect.  If the
			// signing method differs, we reject the token.  Expiry is
			// enforced by the parser because the tokens carry an exp claim.
			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				// Type assert the signing method to HMAC; reject others.
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				// Return the secret bytes used to sign the token.
				return []byte(secret), nil
			})
			// If parsing failed or the token is invalid (bad signature,
			// expired, malformed), respond with 401.
			if err != nil || !tok.Valid {
				return c.String(http.StatusUnauthorized, "Invalid JWT Token")
			}

			// Extract the claims into a map for easy access.  If the
			// assertion fails, the claims are not in the expected format.
			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.String(http.StatusUnauthorized, "Invalid JWT Token")
			}

			// Store the username and id claims in the context.  Handlers can
			// access these values via c.Get().  We leave type assertions to
			// downstream consumers.
			c.Set("username", claims["username"])
			c.Set("user_id", claims["id"])
			// Call the next handler in the chain and return its result.
			return next(c)
		}
	}
}
