package model

// RequestStatus is the state of a workflow request. Transfer and disposal
// requests move through the same graph:
//
//	PENDING  → APPROVED | REJECTED | CANCELLED
//	APPROVED → COMPLETED | CANCELLED
//
// REJECTED, COMPLETED, and CANCELLED are terminal — no transition leaves them.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusApproved  RequestStatus = "APPROVED"
	StatusRejected  RequestStatus = "REJECTED"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusCancelled RequestStatus = "CANCELLED"
)

// Terminal reports whether no further transition may leave the status.
func (s RequestStatus) Terminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransition reports whether the workflow graph allows moving from s to
// target. The graph is fixed; there is no configurable DSL.
func (s RequestStatus) CanTransition(target RequestStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusApproved || target == StatusRejected || target == StatusCancelled
	case StatusApproved:
		return target == StatusCompleted || target == StatusCancelled
	}
	return false
}

// RequestKind distinguishes the two workflow instantiations.
type RequestKind string

const (
	KindTransfer RequestKind = "TRANSFER"
	KindDisposal RequestKind = "DISPOSAL"
)

// Prefix returns the sequence-number prefix for the kind.
func (k RequestKind) Prefix() string {
	if k == KindDisposal {
		return "DSP"
	}
	return "TRF"
}
