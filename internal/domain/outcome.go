package domain

// OutcomeKind identifies which branch an authentication attempt took.
type OutcomeKind int

const (
	// OutcomeAuthenticated means the user was resolved from cache or directory.
	OutcomeAuthenticated OutcomeKind = iota
	// OutcomeRejected means the rejection gate fired before any lookup.
	OutcomeRejected
	// OutcomeNotFound means neither cache nor directory knows the user.
	OutcomeNotFound
)

// Outcome is the result of one authentication attempt. Record is set
// only for OutcomeAuthenticated.
type Outcome struct {
	Kind   OutcomeKind
	Record UserRecord
}

// Authenticated reports whether the attempt resolved a member record.
func (o *Outcome) Authenticated() bool {
	return o.Kind == OutcomeAuthenticated
}
