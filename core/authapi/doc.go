// Package authapi is the typed client for the backend authentication
// endpoints: POST /auth/login, POST /auth/signup and GET /auth/profile.
//
// The client only speaks the wire contract. Bearer-token attachment and
// global 401/403 handling belong to the transport layer (core/authtransport);
// wire the two together by handing the client an *http.Client built on that
// transport:
//
//	transport := authtransport.New(store, registry)
//	api := authapi.New(cfg.APIBaseURL,
//		authapi.WithHTTPClient(&http.Client{Transport: transport}),
//	)
//
// Non-2xx responses come back as *APIError with the backend's {message}
// body flattened into a display-ready string; requests that never reached
// the backend return ErrRequestFailed with the cause joined in.
package authapi
