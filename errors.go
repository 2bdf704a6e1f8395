package anatomy

import "errors"

// Sentinel errors for the anatomy package.
var (
	// ErrLayoutPending is returned when a Measurer has not yet laid out the
	// text it is asked about. Callers wait for the layout and try again.
	ErrLayoutPending = errors.New("anatomy: layout pending")

	// ErrNoHost is returned when a Pipeline has no LayoutHost.
	ErrNoHost = errors.New("anatomy: no layout host")
)
