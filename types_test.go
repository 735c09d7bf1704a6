package eventbus

import "testing"

func TestPriority_Ordering(t *testing.T) {
	order := []Priority{
		PriorityUrgent,
		PriorityHighest,
		PriorityHigh,
		PriorityNormal,
		PriorityLow,
		PriorityLowest,
	}
	for i := 1; i < len(order); i++ {
		if order[i-1] >= order[i] {
			t.Errorf("expected %s < %s", order[i-1], order[i])
		}
	}
	if int(PriorityUrgent) != 0 {
		t.Errorf("expected PriorityUrgent to be 0, got %d", PriorityUrgent)
	}
	if int(PriorityLowest) != numPriorities-1 {
		t.Errorf("expected PriorityLowest to be %d, got %d", numPriorities-1, PriorityLowest)
	}
}

func TestPriority_String(t *testing.T) {
	tests := []struct {
		priority Priority
		want     string
	}{
		{PriorityUrgent, "urgent"},
		{PriorityHighest, "highest"},
		{PriorityHigh, "high"},
		{PriorityNormal, "normal"},
		{PriorityLow, "low"},
		{PriorityLowest, "lowest"},
		{Priority(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.priority.String(); got != tt.want {
			t.Errorf("Priority(%d).String() = %q, want %q", tt.priority, got, tt.want)
		}
	}
}

func TestPriority_Valid(t *testing.T) {
	for p := PriorityUrgent; p <= PriorityLowest; p++ {
		if !p.valid() {
			t.Errorf("expected %s to be valid", p)
		}
	}
	if Priority(-1).valid() {
		t.Error("expected -1 to be invalid")
	}
	if Priority(numPriorities).valid() {
		t.Errorf("expected %d to be invalid", numPriorities)
	}
}

func TestResult_IsNoResult(t *testing.T) {
	if !(Result{}).IsNoResult() {
		t.Error("expected zero Result to be the no-result sentinel")
	}
	if (Result{Dispatched: true}).IsNoResult() {
		t.Error("expected dispatched Result to not be the sentinel")
	}
	// A callback returning nil is still a real result.
	if (Result{Value: nil, Dispatched: true}).IsNoResult() {
		t.Error("expected nil-valued dispatched Result to not be the sentinel")
	}
}

func TestCallbackFunc_Handle(t *testing.T) {
	cb := CallbackFunc(func(e *Event) (any, error) {
		return e.Payload(), nil
	})
	v, err := cb.Handle(NewEvent("echo", "payload"))
	if err != nil {
		t.Fatalf("Handle() failed: %v", err)
	}
	if v != "payload" {
		t.Errorf("expected %q, got %v", "payload", v)
	}
}
