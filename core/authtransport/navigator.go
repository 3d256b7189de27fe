package authtransport

// Navigator is the view-routing surface the transport and guards act on.
// The application's router implements it; the transport only ever forces
// navigation on global auth failures.
type Navigator interface {
	// CurrentPath returns the path of the currently displayed location.
	CurrentPath() string
	// Navigate replaces the current location with the given path.
	Navigate(path string)
}

// NoOpNavigator ignores all navigation. Useful for headless clients that
// have no view layer to redirect.
type NoOpNavigator struct{}

func (NoOpNavigator) CurrentPath() string { return "" }

func (NoOpNavigator) Navigate(path string) {}
