package provision

// Status is the lifecycle of a ProjectCreationRequest.
//
//	PENDING -> CREATING_PROJECT -> INDEXING -> COMPLETED
//
// ERROR is reachable from any non-terminal state. COMPLETED and ERROR
// are terminal: no transition ever leaves them. COMPLETED is reachable
// even after an indexing-phase failure, because by then the Project
// exists and is usable.
type Status string

const (
	StatusPending         Status = "PENDING"
	StatusCreatingProject Status = "CREATING_PROJECT"
	StatusIndexing        Status = "INDEXING"
	StatusCompleted       Status = "COMPLETED"
	StatusError           Status = "ERROR"
)

// Terminal reports whether no transition may leave s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusError
}

// CanTransition reports whether from -> to is a legal move.
func CanTransition(from, to Status) bool {
	if from.Terminal() {
		return false
	}
	switch to {
	case StatusCreatingProject:
		return from == StatusPending
	case StatusIndexing:
		return from == StatusCreatingProject
	case StatusCompleted:
		return from == StatusIndexing
	case StatusError:
		return true
	default:
		return false
	}
}
