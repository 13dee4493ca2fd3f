// Package fault classifies failures with a closed set of kinds.
//
// Low-level failures (network errors, malformed identifiers, missing input)
// are never returned raw from a service boundary. They are wrapped with Tag
// and callers test the classification with TypeOf:
//
//	rec, err := targets.GetByID(ctx, id)
//	if fault.TypeOf(err, fault.Database) {
//	    // transient, retry later
//	}
//
// Classification survives any amount of re-wrapping. Tagging an error that is
// already tagged keeps its original kind; Override is the explicit escape
// hatch.
package fault
