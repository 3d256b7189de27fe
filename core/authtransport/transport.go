package authtransport

import (
	"net/http"
	"strings"

	"github.com/storeratings/authkit/core/session"
	"github.com/storeratings/authkit/pkg/logger"
)

// Transport is an http.RoundTripper that attaches the stored bearer token
// to every outgoing request and classifies every response uniformly:
//
//   - 401 on any endpoint except login/signup: clear the credential store,
//     ask the Terminator to end the session, and navigate to the login
//     location unless the client is already on the login or signup view.
//   - 403 on any endpoint except login/signup, while the current location
//     is under a restricted prefix: navigate to the public home. The
//     session itself is left intact.
//   - Everything else passes through unmodified.
type Transport struct {
	store      session.Store
	terminator Terminator
	cfg        *Config
}

// New creates a transport over the given credential store and terminator.
// Pass a Registry as the terminator so the controller can attach and detach
// itself without the transport knowing about it.
func New(store session.Store, terminator Terminator, opts ...Option) *Transport {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if terminator == nil {
		terminator = NoOpTerminator{}
	}
	return &Transport{
		store:      store,
		terminator: terminator,
		cfg:        cfg,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	// Per RoundTripper contract the request must not be mutated in place.
	out := req.Clone(ctx)
	if token, err := t.store.Token(ctx); err == nil && token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.cfg.Base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if !t.isAuthEndpoint(req.URL.Path) {
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			t.handleUnauthorized(req)
		case http.StatusForbidden:
			t.handleForbidden(req)
		}
	}

	return resp, nil
}

// handleUnauthorized ends the session globally: the credential is gone or
// rejected, so every call site sees the same outcome regardless of which
// request tripped it.
func (t *Transport) handleUnauthorized(req *http.Request) {
	ctx := req.Context()

	if err := session.Clear(ctx, t.store); err != nil {
		t.cfg.Logger.ErrorContext(ctx, "failed to clear credential store after 401",
			logger.Component("authtransport"),
			logger.Error(err),
		)
	}

	t.terminator.TerminateSession()

	current := t.cfg.Navigator.CurrentPath()
	if current != t.cfg.LoginPath && current != t.cfg.SignupPath {
		t.cfg.Navigator.Navigate(t.cfg.LoginPath)
	}

	t.cfg.Logger.InfoContext(ctx, "session terminated by authentication failure",
		logger.Component("authtransport"),
		logger.Path(req.URL.Path),
		logger.StatusCode(http.StatusUnauthorized),
	)
}

// handleForbidden redirects out of role-restricted areas without touching
// the session: the credential is still valid, the role just does not cover
// the area.
func (t *Transport) handleForbidden(req *http.Request) {
	current := t.cfg.Navigator.CurrentPath()
	for _, prefix := range t.cfg.RestrictedPrefixes {
		if strings.HasPrefix(current, prefix) {
			t.cfg.Navigator.Navigate(t.cfg.HomePath)

			t.cfg.Logger.InfoContext(req.Context(), "redirected out of restricted area",
				logger.Component("authtransport"),
				logger.Path(req.URL.Path),
				logger.StatusCode(http.StatusForbidden),
			)
			return
		}
	}
}

func (t *Transport) isAuthEndpoint(path string) bool {
	for _, authPath := range t.cfg.AuthPaths {
		if strings.Contains(path, authPath) {
			return true
		}
	}
	return false
}
