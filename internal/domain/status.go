package domain

// RequestStatus is a state in the request lifecycle.
type RequestStatus string

const (
	RequestStatusNew              RequestStatus = "NEW"
	RequestStatusInProgress       RequestStatus = "IN_PROGRESS"
	RequestStatusInReview         RequestStatus = "IN_REVIEW"
	RequestStatusChangesRequested RequestStatus = "CHANGES_REQUESTED"
	RequestStatusApproved         RequestStatus = "APPROVED"
	RequestStatusDelivered        RequestStatus = "DELIVERED"
	RequestStatusDone             RequestStatus = "DONE"
	RequestStatusCanceled         RequestStatus = "CANCELED"
	RequestStatusClosed           RequestStatus = "CLOSED"
)

// AllRequestStatuses lists every state in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusInReview,
	RequestStatusChangesRequested,
	RequestStatusApproved,
	RequestStatusDelivered,
	RequestStatusDone,
	RequestStatusCanceled,
	RequestStatusClosed,
}

// TerminalStatuses have no outgoing edges.
var TerminalStatuses = []RequestStatus{
	RequestStatusDone,
	RequestStatusCanceled,
	RequestStatusClosed,
}

// transitions holds the forward edges. CANCELED is reachable from every
// non-terminal state and is handled in CanTransition rather than listed here.
var transitions = map[RequestStatus][]RequestStatus{
	RequestStatusNew:              {RequestStatusInProgress},
	RequestStatusInProgress:       {RequestStatusInReview},
	RequestStatusInReview:         {RequestStatusApproved, RequestStatusChangesRequested},
	RequestStatusChangesRequested: {RequestStatusInProgress},
	RequestStatusApproved:         {RequestStatusDelivered},
	RequestStatusDelivered:        {RequestStatusDone},
}

func (s RequestStatus) String() string { return string(s) }

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusInReview,
		RequestStatusChangesRequested, RequestStatusApproved, RequestStatusDelivered,
		RequestStatusDone, RequestStatusCanceled, RequestStatusClosed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed from s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusDone, RequestStatusCanceled, RequestStatusClosed:
		return true
	}
	return false
}

// CanTransition reports whether from -> to is an edge of the state machine.
func CanTransition(from, to RequestStatus) bool {
	if !from.IsValid() || !to.IsValid() || from.IsTerminal() {
		return false
	}
	if to == RequestStatusCanceled {
		return true
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns *InvalidTransitionError when from -> to is not allowed.
func ValidateTransition(from, to RequestStatus) error {
	if !CanTransition(from, to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// NextStatuses returns the statuses reachable from s in one step.
func NextStatuses(s RequestStatus) []RequestStatus {
	if !s.IsValid() || s.IsTerminal() {
		return nil
	}
	next := make([]RequestStatus, 0, len(transitions[s])+1)
	next = append(next, transitions[s]...)
	return append(next, RequestStatusCanceled)
}
