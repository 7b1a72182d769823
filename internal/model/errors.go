package model

import "errors"

// ErrDegenerateInput names the spec.md §7.1 condition: a ProblemInput with
// no passengers or no vehicles. It is never returned from this package —
// ProblemInput.Degenerate() reports the same condition as a bool, and
// ga.Driver.Run short-circuits with a blank solution rather than raising
// anything — but the sentinel lets callers and logs refer to the condition
// by name, the same way ga.ErrInternalInconsistency names its panic
// condition.
var ErrDegenerateInput = errors.New("degenerate input: no passengers or no vehicles")

// ErrCapacityShortage names the spec.md §7.2 condition: total vehicle
// capacity below the passenger count. Like ErrDegenerateInput, this is
// never returned as an error — ProblemInput.HasCapacityShortfall() reports
// it as a bool and the GA driver runs best-effort, flagging the resulting
// Solution instead of failing.
var ErrCapacityShortage = errors.New("infeasible capacity: total vehicle capacity is less than the number of passengers")
