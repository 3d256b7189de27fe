// Package guard implements the route-level access policies consumed by
// the view-routing layer.
//
// Guards are pure consumers of the session controller's published state:
// they read, decide, and hand back a Decision (stall, render, or redirect
// with an optional return-to location). They never mutate session state
// themselves. The one side effect a Protected guard has is kicking off a
// silent background revalidation on navigation, which by contract cannot
// end the session.
//
//	protected := guard.NewProtected(ctl,
//		guard.WithAllowedRoles(session.RoleAdmin),
//	)
//
//	switch d := protected.Evaluate(ctx, "/admin/users"); {
//	case d.Pending():
//		// show spinner; no authorization decision may be made yet
//	case d.Redirect():
//		router.Navigate(d.To) // d.ReturnTo carries the attempted location
//	default:
//		// render the destination
//	}
package guard
