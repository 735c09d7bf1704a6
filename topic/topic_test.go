package topic

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Spec
		wantErr error
	}{
		{
			name:  "plain name",
			input: "greet",
			want:  Spec{Kind: KindNamed, Name: "greet"},
		},
		{
			name:  "dotted name",
			input: "buffer.changed",
			want:  Spec{Kind: KindNamed, Name: "buffer.changed"},
		},
		{
			name:  "any broadcast",
			input: "any",
			want:  Spec{Kind: KindBroadcast, Name: Any},
		},
		{
			name:  "all broadcast",
			input: "all",
			want:  Spec{Kind: KindBroadcast, Name: All},
		},
		{
			name:  "bare timer",
			input: "timer",
			want:  Spec{Kind: KindTimer, Name: Timer},
		},
		{
			name:  "timer spec",
			input: "timer:500",
			want:  Spec{Kind: KindTimer, Name: Timer, Interval: 500 * time.Millisecond},
		},
		{
			name:  "timer spec one ms",
			input: "timer:1",
			want:  Spec{Kind: KindTimer, Name: Timer, Interval: time.Millisecond},
		},
		{
			name:    "empty name",
			input:   "",
			wantErr: ErrEmptyName,
		},
		{
			name:    "timer zero interval",
			input:   "timer:0",
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "timer negative interval",
			input:   "timer:-5",
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "timer non-numeric interval",
			input:   "timer:soon",
			wantErr: ErrInvalidInterval,
		},
		{
			name:    "timer empty interval",
			input:   "timer:",
			wantErr: ErrInvalidInterval,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestName_IsBroadcast(t *testing.T) {
	if !Any.IsBroadcast() {
		t.Error("expected Any to be broadcast")
	}
	if !All.IsBroadcast() {
		t.Error("expected All to be broadcast")
	}
	if Timer.IsBroadcast() {
		t.Error("expected Timer to not be broadcast")
	}
	if Name("greet").IsBroadcast() {
		t.Error("expected plain name to not be broadcast")
	}
}

func TestName_IsReserved(t *testing.T) {
	for _, n := range []Name{Any, All, Timer} {
		if !n.IsReserved() {
			t.Errorf("expected %q to be reserved", n)
		}
	}
	if Name("greet").IsReserved() {
		t.Error("expected plain name to not be reserved")
	}
}

func TestName_IsValid(t *testing.T) {
	if !Name("greet").IsValid() {
		t.Error("expected non-empty name to be valid")
	}
	if Name("").IsValid() {
		t.Error("expected empty name to be invalid")
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNamed, "named"},
		{KindBroadcast, "broadcast"},
		{KindTimer, "timer"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
