package valueobjects

import "fmt"

// Status is the shared lifecycle status of a damage report and its
// maintenance ticket. Once a ticket exists the two are always written to the
// same value in the same transaction.
type Status string

const (
	StatusAwaiting             Status = "awaiting"
	StatusInProgress           Status = "in_progress"
	StatusAwaitingVerification Status = "awaiting_verification"
	StatusDone                 Status = "done"
)

var validStatuses = map[Status]bool{
	StatusAwaiting:             true,
	StatusInProgress:           true,
	StatusAwaitingVerification: true,
	StatusDone:                 true,
}

// statusTransitions is the full lifecycle. There is deliberately no edge out
// of done, and no edge back: reassignment, rejection, and reopening do not
// exist as operations.
var statusTransitions = map[Status][]Status{
	StatusAwaiting: {
		StatusInProgress,
	},
	StatusInProgress: {
		StatusAwaitingVerification,
	},
	StatusAwaitingVerification: {
		StatusDone,
	},
	StatusDone: {},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

func (s Status) CanTransitionTo(newStatus Status) bool {
	allowedTransitions, ok := statusTransitions[s]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s Status) IsAwaiting() bool {
	return s == StatusAwaiting
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsAwaitingVerification() bool {
	return s == StatusAwaitingVerification
}

func (s Status) IsDone() bool {
	return s == StatusDone
}

// IsTerminal reports whether no further transition can ever leave s.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
