package guard

// Action is what a guard tells the view layer to do.
type Action int

const (
	// ActionPending stalls rendering: session restoration has not finished
	// and no authorization decision may be made yet.
	ActionPending Action = iota
	// ActionRender shows the guarded destination.
	ActionRender
	// ActionRedirect navigates elsewhere instead of rendering.
	ActionRedirect
)

// Decision is the outcome of evaluating a guard for a location.
type Decision struct {
	Action Action
	// To is the redirect target when Action is ActionRedirect.
	To string
	// ReturnTo carries the originally attempted location so it can be
	// returned to after login.
	ReturnTo string
}

// Pending reports whether rendering should stall on a pending indicator.
func (d Decision) Pending() bool { return d.Action == ActionPending }

// Render reports whether the guarded destination should be shown.
func (d Decision) Render() bool { return d.Action == ActionRender }

// Redirect reports whether navigation was requested instead of rendering.
func (d Decision) Redirect() bool { return d.Action == ActionRedirect }

func pending() Decision { return Decision{Action: ActionPending} }

func render() Decision { return Decision{Action: ActionRender} }

func redirect(to string) Decision {
	return Decision{Action: ActionRedirect, To: to}
}

func redirectBack(to, from string) Decision {
	return Decision{Action: ActionRedirect, To: to, ReturnTo: from}
}
