// Package auth resolves the caller's identity from a request credential.
//
// The credential is the user's integer id, presented as an Authorization
// or X-Authorization header (any scheme) or as an auth cookie. This is an
// explicitly simplified scheme owned by the external user store; there is
// no token signing or expiry.
//
// # Basic Usage
//
//	r.Group(func(r chi.Router) {
//		r.Use(auth.Auth(userRepo))
//		r.Use(auth.RequireAuth)
//		parcelHandle.RegisterRoutes(r)
//	})
//
// Auth resolves the identity and stores it in the request context; routes
// that tolerate anonymous access can use it alone. RequireAuth rejects
// requests without a resolved identity with a 401 and a WWW-Authenticate
// challenge.
package auth
