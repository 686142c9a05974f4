package plan

// Plan names, ordered basic < pro < elite.
const (
	Basic = "basic"
	Pro   = "pro"
	Elite = "elite"
)

// Subscription statuses.
const (
	StatusActive   = "active"
	StatusPastDue  = "past_due"
	StatusCanceled = "canceled"
)

var rank = map[string]int{
	Basic: 1,
	Pro:   2,
	Elite: 3,
}

// Valid reports whether p is a known plan name
func Valid(p string) bool {
	_, ok := rank[p]
	return ok
}

// Rank returns the ordering rank of a plan, 0 for unknown plans
func Rank(p string) int {
	return rank[p]
}

// IsUpgrade reports whether moving from current to target is a strict
// upgrade. Lateral moves and downgrades return false.
func IsUpgrade(current, target string) bool {
	return Rank(target) > Rank(current)
}

// AllowsResponses reports whether a plan grants the ability to respond
// to reviews. Only pro and elite qualify.
func AllowsResponses(p string) bool {
	return p == Pro || p == Elite
}
