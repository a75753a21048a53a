package provision

import "testing"

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		ok       bool
	}{
		{StatusPending, StatusCreatingProject, true},
		{StatusCreatingProject, StatusIndexing, true},
		{StatusIndexing, StatusCompleted, true},
		{StatusPending, StatusError, true},
		{StatusCreatingProject, StatusError, true},
		{StatusIndexing, StatusError, true},

		{StatusPending, StatusIndexing, false},
		{StatusPending, StatusCompleted, false},
		{StatusCreatingProject, StatusCompleted, false},
		{StatusIndexing, StatusCreatingProject, false},

		// Terminal states never transition, not even to ERROR.
		{StatusCompleted, StatusError, false},
		{StatusCompleted, StatusIndexing, false},
		{StatusError, StatusCompleted, false},
		{StatusError, StatusError, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.ok {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.ok)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusCreatingProject, StatusIndexing} {
		if s.Terminal() {
			t.Errorf("%s.Terminal() = true, want false", s)
		}
	}
	for _, s := range []Status{StatusCompleted, StatusError} {
		if !s.Terminal() {
			t.Errorf("%s.Terminal() = false, want true", s)
		}
	}
}
