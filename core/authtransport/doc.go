// Package authtransport integrates the credential store with the HTTP
// layer: a RoundTripper that attaches the stored bearer token to every
// outgoing request and resolves authentication and authorization failures
// globally, so no individual call site has to.
//
// The transport deliberately knows nothing about the session controller.
// It ends sessions through the minimal Terminator interface, usually a
// Registry the controller attaches itself to:
//
//	registry := authtransport.NewRegistry()
//	transport := authtransport.New(store, registry,
//		authtransport.WithNavigator(router),
//	)
//	httpClient := &http.Client{Transport: transport}
//
//	// later, at controller construction
//	registry.Set(controller)
//
// Login and signup endpoints are exempt from the global handling so that a
// failed credential submission surfaces as an ordinary rejected call
// instead of a logout and redirect.
package authtransport
