package main

// statusExpireMsg clears the transient copy status once its display window
// has elapsed. The gen field identifies which copy scheduled the expiry, so
// a later copy restarts the window instead of being cut short by a stale
// timer.
type statusExpireMsg struct {
	gen int
}
