package kernel

import "time"

// Fact is an immutable record of a state change that already happened inside
// an aggregate, as opposed to a command, which merely requests a change.
//
// Aggregates produce exactly one fact per successful command during the
// validation phase and mutate state only in the apply phase. Persisted facts
// form an ordered, append-only log; replaying the log for an entity id through
// the apply phase alone reconstructs its state without re-running validation.
type Fact interface {
	// FactName returns the stable wire name of the fact type.
	FactName() string

	// AggregateID returns the id of the entity the fact belongs to.
	AggregateID() UUID

	// OccurredAt returns the moment the fact was produced.
	OccurredAt() time.Time
}
