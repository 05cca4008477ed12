package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseInspect,
				Kind:     KindUnsupportedShape,
				Path:     []string{"outer", "inner"},
				TypeName: "map[string]int",
				Detail:   "no fixed field layout",
			},
			contains: []string{"[inspect]", "unsupported_shape", "outer.inner", "map[string]int", "no fixed field layout"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseWIT,
				Kind:  KindNotFound,
			},
			contains: []string{"[wit]", "not_found"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseWIT,
				Kind:   KindInvalidData,
				Detail: "parse WIT document",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[wit]", "invalid_data", "parse WIT document", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnsupportedShape(PhaseInspect, "int", "not a struct")

	if !errors.Is(err, &Error{Phase: PhaseInspect, Kind: KindUnsupportedShape}) {
		t.Error("expected match on same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhaseWIT, Kind: KindUnsupportedShape}) {
		t.Error("expected no match on different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseInspect, Kind: KindNotFound}) {
		t.Error("expected no match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(PhaseWIT, KindInvalidData, cause, "decode failed")

	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to match via errors.Is")
	}
	if errors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseInspect, KindUnsupportedShape).
		TypeName("chan int").
		Path("config", "events").
		Detail("channel types have no layout").
		Build()

	if err.Phase != PhaseInspect {
		t.Errorf("phase: got %q, want %q", err.Phase, PhaseInspect)
	}
	if err.Kind != KindUnsupportedShape {
		t.Errorf("kind: got %q, want %q", err.Kind, KindUnsupportedShape)
	}
	if err.TypeName != "chan int" {
		t.Errorf("type name: got %q, want %q", err.TypeName, "chan int")
	}
	if len(err.Path) != 2 {
		t.Errorf("path: got %v, want 2 elements", err.Path)
	}
}

func TestBuilder_DetailFormatting(t *testing.T) {
	err := New(PhaseWIT, KindUnsupportedShape).
		Detail("variant has %d cases", 3).
		Build()

	if err.Detail != "variant has 3 cases" {
		t.Errorf("detail: got %q", err.Detail)
	}
}

func TestNotFound(t *testing.T) {
	err := NotFound(PhaseWIT, "type", "point")
	if !strings.Contains(err.Error(), `type "point" not found`) {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
