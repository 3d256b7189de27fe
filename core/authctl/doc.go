// Package authctl is the session lifecycle controller: the single owner of
// in-memory session state and the only component that mutates it.
//
// # Lifecycle
//
// A controller moves through Uninitialized → Loading → {Anonymous,
// Authenticated}. Anonymous becomes Authenticated only through a
// successful Login or Signup. Authenticated becomes Anonymous through an
// explicit Logout, a non-silent ValidateToken or RefreshUser failure, or a
// transport-triggered termination (401 on a real API call). A successful
// revalidation is not a transition: it only refreshes the user payload.
//
//	registry := authtransport.NewRegistry()
//	transport := authtransport.New(store, registry)
//	api := authapi.New(cfg.APIBaseURL,
//		authapi.WithHTTPClient(&http.Client{Transport: transport}))
//
//	ctl := authctl.New(store, api, authctl.WithRegistry(registry))
//	ctl.Start(ctx)
//	defer ctl.Close()
//
// # Silent validation
//
// ValidateToken's silent mode exists for the periodic timer and for
// passive navigation checks: those are advisory, and their failure never
// terminates the session. The asymmetry is intentional: a background blip
// leaves a possibly-expired session in place until the next real API call
// returns 401. Do not "fix" it by logging out on silent failures.
//
// Overlapping validations (a timer tick racing a navigation check)
// collapse into a single in-flight profile request, so the last-write-wins
// race between concurrent revalidations cannot occur.
//
// # State publishing
//
// Subscribers receive a State on every change: user replaced, loading
// toggled, session cleared. Authenticated is always re-derived from the
// credential store at read time; the in-memory user exists for reactivity,
// the store stays the source of truth.
package authctl
