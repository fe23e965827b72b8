package logging

import (
	"log/slog"
	"testing"
)

func TestErrWithNil(t *testing.T) {
	attr := Err(nil)
	// A nil error must not produce an "error" attribute.
	if attr.Key == KeyError {
		t.Errorf("Expected empty attribute for nil error, got key %q", attr.Key)
	}
}

func TestErrWithError(t *testing.T) {
	attr := Err(errTest("boom"))
	if attr.Key != KeyError {
		t.Errorf("Expected key %q, got %q", KeyError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("Expected value 'boom', got %q", attr.Value.String())
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		val  string
	}{
		{"operation", Operation("resolve"), KeyOperation, "resolve"},
		{"tool", Tool("get_utc"), KeyTool, "get_utc"},
		{"status", Status(StatusSuccess), KeyStatus, "success"},
		{"server", Server("pool.ntp.org"), KeyServer, "pool.ntp.org"},
		{"query", Query("Warsaw"), KeyQuery, "Warsaw"},
		{"zone", Zone("Europe/Warsaw"), KeyZone, "Europe/Warsaw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("Expected key %q, got %q", tt.key, tt.attr.Key)
			}
			if tt.attr.Value.String() != tt.val {
				t.Errorf("Expected value %q, got %q", tt.val, tt.attr.Value.String())
			}
		})
	}
}

func TestNewLoggerLevels(t *testing.T) {
	if NewLogger(false) == nil {
		t.Fatal("Expected non-nil logger")
	}
	if NewLogger(true) == nil {
		t.Fatal("Expected non-nil debug logger")
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
