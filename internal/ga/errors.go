package ga

import "fmt"

// ErrInternalInconsistency signals that an operator produced a Solution
// violating the "each passenger assigned at most once" invariant. Per
// spec.md §7.3 this must never happen if the operators are implemented
// correctly; it is a programmer error, not a runtime condition callers
// should handle, so it is only ever used as a panic payload (see
// assertConsistent), never returned.
type ErrInternalInconsistency struct {
	Reason        string
	PassengerID   int64
	VehicleIndexA int
	VehicleIndexB int
}

func (e *ErrInternalInconsistency) Error() string {
	return fmt.Sprintf("internal inconsistency: %s (passenger %d in vehicles %d and %d)",
		e.Reason, e.PassengerID, e.VehicleIndexA, e.VehicleIndexB)
}
