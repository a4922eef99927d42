package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/render"
	"github.com/tendant/simple-parcel/pkg/user"
)

// CookieName is the cookie holding the raw credential token.
const CookieName = "auth"

// UserStore is the lookup collaborator the resolver needs. Satisfied by
// user.UserRepository implementations.
type UserStore interface {
	GetUser(ctx context.Context, id int64) (user.User, error)
}

// ErrorBody is the JSON body written for authentication failures.
type ErrorBody struct {
	Message string `json:"message"`
	Ok      bool   `json:"ok"`
	Status  int    `json:"status,omitempty"`
}

// Auth resolves the caller's identity from the request credential and
// stores it in the request context.
//
// The token is taken from the Authorization header, then X-Authorization,
// then the auth cookie. The header value must be exactly two
// whitespace-separated tokens; the scheme itself is not validated. A header
// with any other shape, or no credential at all, passes the request through
// anonymously; protected routes reject those via RequireAuth.
//
// A token that is not a positive integer yields 400, a well-formed token
// with no matching user yields 401, both with a WWW-Authenticate challenge.
func Auth(userStore UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := extractToken(r)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			id, err := strconv.ParseInt(strings.TrimSpace(token), 10, 64)
			if err != nil || id < 1 {
				writeChallenge(w, r, http.StatusBadRequest,
					"Bad request, bad auth type (number required)",
					"bad authorization included in request")
				return
			}

			u, err := userStore.GetUser(r.Context(), id)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					writeChallenge(w, r, http.StatusUnauthorized,
						"Unauthorized, unknown user",
						"unknown user")
					return
				}
				slog.Error("Failed looking up user", "id", id, "err", err)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			ctx := WithIdentity(r.Context(), Identity{SubjectID: u.ID, Role: u.Role})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that reached a protected route without a
// resolved identity. Must be used after Auth.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			w.Header().Set("WWW-Authenticate", challenge(r, "no authorization included in request"))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, ErrorBody{Message: "Unauthorized", Ok: false})
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken returns the raw credential token, if any. A malformed
// header does not fall back to the cookie; the request proceeds anonymous.
func extractToken(r *http.Request) (string, bool) {
	credentials := r.Header.Get("Authorization")
	if credentials == "" {
		credentials = r.Header.Get("X-Authorization")
	}

	if credentials != "" {
		parts := strings.Fields(credentials)
		if len(parts) != 2 {
			return "", false
		}
		return parts[1], true
	}

	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func writeChallenge(w http.ResponseWriter, r *http.Request, status int, message, description string) {
	w.Header().Set("WWW-Authenticate", challenge(r, description))
	render.Status(r, status)
	render.JSON(w, r, ErrorBody{Message: message, Ok: false, Status: status})
}

func challenge(r *http.Request, description string) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	url := fmt.Sprintf("%s://%s%s", scheme, r.Host, r.URL.RequestURI())
	return fmt.Sprintf(`Bearer realm=%q,error="invalid_request",error_description=%q`, url, description)
}
