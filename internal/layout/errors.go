package layout

import "errors"

// Sentinel errors returned by the layout engine. Callers match them with errors.Is.
var (
	// ErrLayoutInfeasible means margins and spacing leave no room for the
	// requested number of columns or rows on the paper.
	ErrLayoutInfeasible = errors.New("layout infeasible")

	// ErrInvalidParameter means a caller passed malformed geometry such as a
	// non-positive paper size, zero columns or a negative margin.
	ErrInvalidParameter = errors.New("invalid parameter")
)
