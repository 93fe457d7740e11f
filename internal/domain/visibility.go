package domain

// ResolveVisibility decides, at write time, whether an event is shown to
// client users. Client authors always write client-visible events; genesis
// events are always visible. For everything else an explicit override wins,
// otherwise the per-type default applies.
func ResolveVisibility(eventType EventType, actorRole UserRole, override *bool) bool {
	if eventType == EventTypeCreated || actorRole.IsClient() {
		return true
	}
	if override != nil {
		return *override
	}
	return defaultVisibility(eventType)
}

func defaultVisibility(eventType EventType) bool {
	switch eventType {
	case EventTypeCreated, EventTypeRevisionAdded:
		return true
	default:
		// Comments, status changes, assignments, due date and priority changes.
		return false
	}
}

// IsVisibleToClient is the read-side predicate.
func IsVisibleToClient(e RequestEvent) bool {
	return e.VisibleToClient
}

// FilterVisibleToClient returns only the client-visible events, preserving order.
// Hidden events are dropped whole; none of their fields leave this function.
func FilterVisibleToClient(events []RequestEvent) []RequestEvent {
	visible := make([]RequestEvent, 0, len(events))
	for _, e := range events {
		if IsVisibleToClient(e) {
			visible = append(visible, e)
		}
	}
	return visible
}
