package coordinator

import "github.com/BrandonKowalski/navkit/pkg/navkit/router"

// verifyRouters checks that router i exists exactly when router i-1 presents
// a view, which also means the top router presents nothing.
func verifyRouters(op string, routers []*router.NavigationRouter) error {
	for i, r := range routers {
		top := i == len(routers)-1
		switch {
		case !top && !r.IsPresenting():
			return &InvariantError{Op: op, Index: i + 1, Reason: "router exists but the router below presents nothing"}
		case top && r.IsPresenting():
			return &InvariantError{Op: op, Index: i, Reason: "top router presents a view with no router above it"}
		}
	}
	return nil
}
