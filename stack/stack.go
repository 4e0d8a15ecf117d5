// Package stack provides call-depth accounting for translated functions.
// Generated prologues enter the guard and leave it on return, bounding
// runaway recursion with a trap instead of exhausting the host stack.
package stack

// OverflowError is the cause reported when the call depth budget is spent.
type OverflowError struct{}

func (OverflowError) Error() string { return "call stack exhausted" }

// DefaultLimit is the call depth budget used when none is configured. Deep
// enough for any reasonable module, shallow enough to fail long before the
// host stack does.
const DefaultLimit = 500000

// Guard tracks the call depth of one module instance. Not safe for
// concurrent use; translated code runs on one logical thread.
type Guard struct {
	remaining int
	limit     int
}

// NewGuard returns a guard with the given depth budget. A non-positive
// limit selects DefaultLimit.
func NewGuard(limit int) *Guard {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Guard{remaining: limit, limit: limit}
}

// Enter consumes one level of the budget. It fails with an OverflowError
// when the budget is spent, leaving the depth unchanged.
func (g *Guard) Enter() error {
	if g.remaining == 0 {
		return OverflowError{}
	}
	g.remaining--
	return nil
}

// Leave restores one level. Calls must pair with successful Enter calls.
func (g *Guard) Leave() {
	if g.remaining < g.limit {
		g.remaining++
	}
}

// Depth reports how many levels are currently in use.
func (g *Guard) Depth() int {
	return g.limit - g.remaining
}
