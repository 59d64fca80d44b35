package isp

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestResolveConfiguredPort(t *testing.T) {
	tests := []struct {
		name  string
		ports []string
		err   error
	}{
		{"with enumerated ports", []string{"/dev/ttyUSB0", "/dev/ttyUSB1"}, nil},
		{"with no ports", nil, nil},
		{"with enumeration error", nil, errors.New("boom")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			list := func() ([]string, error) {
				called = true
				return tt.ports, tt.err
			}
			var out bytes.Buffer
			r := NewResolver(list, &out)

			port, ok := r.Resolve("/dev/ttyACM3")
			if !ok || port != "/dev/ttyACM3" {
				t.Errorf("Resolve() = %q, %v, expected /dev/ttyACM3, true", port, ok)
			}
			if called {
				t.Error("ports should not be enumerated when a port is configured")
			}
			if out.Len() != 0 {
				t.Errorf("Expected no output, got %q", out.String())
			}
		})
	}
}

func TestResolveAutoDetect(t *testing.T) {
	var out bytes.Buffer
	r := NewResolver(lister([]string{"/dev/ttyACM0", "/dev/ttyUSB0"}, nil), &out)

	port, ok := r.Resolve("")
	if !ok || port != "/dev/ttyACM0" {
		t.Errorf("Resolve() = %q, %v, expected /dev/ttyACM0, true", port, ok)
	}
	if got := out.String(); got != "Auto-detected port: /dev/ttyACM0\n" {
		t.Errorf("Unexpected output %q", got)
	}
}

func TestResolveNoPorts(t *testing.T) {
	var out bytes.Buffer
	r := NewResolver(lister(nil, nil), &out)

	port, ok := r.Resolve("")
	if ok || port != "" {
		t.Errorf("Resolve() = %q, %v, expected absent", port, ok)
	}
	if !strings.Contains(out.String(), "No COM port found!") {
		t.Errorf("Expected warning, got %q", out.String())
	}
}

func TestResolveEnumerationError(t *testing.T) {
	var out bytes.Buffer
	r := NewResolver(lister(nil, errors.New("read /dev: permission denied")), &out)

	if _, ok := r.Resolve(""); ok {
		t.Error("Expected absent port on enumeration error")
	}
	if !strings.Contains(out.String(), "permission denied") {
		t.Errorf("Expected warning with error text, got %q", out.String())
	}
}

func TestResolveEnv(t *testing.T) {
	r := NewResolver(lister([]string{"/dev/ttyUSB0"}, nil), &bytes.Buffer{})

	port, ok := r.ResolveEnv(fakeEnv{UploadPortVar: "/dev/ttyUSB7"})
	if !ok || port != "/dev/ttyUSB7" {
		t.Errorf("ResolveEnv() = %q, %v, expected /dev/ttyUSB7, true", port, ok)
	}

	port, ok = r.ResolveEnv(fakeEnv{})
	if !ok || port != "/dev/ttyUSB0" {
		t.Errorf("ResolveEnv() = %q, %v, expected /dev/ttyUSB0, true", port, ok)
	}
}
