package cmd

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/allbin/go-serial-isp/internal/build"
	"github.com/allbin/go-serial-isp/isp"
	"github.com/spf13/viper"
)

func TestParseSignalState(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
		wantErr  bool
	}{
		{"high", true, false},
		{"HIGH", true, false},
		{"on", true, false},
		{"1", true, false},
		{"low", false, false},
		{"Off", false, false},
		{"false", false, false},
		{"0", false, false},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		got, err := parseSignalState(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseSignalState(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.expected {
			t.Errorf("parseSignalState(%q) = %v, expected %v", tt.in, got, tt.expected)
		}
	}
}

func TestFilterPorts(t *testing.T) {
	ports := []string{"/dev/ttyACM0", "/dev/ttyAMA0", "/dev/ttyS0", "/dev/ttySAC1", "/dev/ttyUSB0"}

	tests := []struct {
		filter   string
		expected []string
	}{
		{"", ports},
		{"all", ports},
		{"usb", []string{"/dev/ttyACM0", "/dev/ttyUSB0"}},
		{"USB", []string{"/dev/ttyACM0", "/dev/ttyUSB0"}},
		{"arm", []string{"/dev/ttyAMA0"}},
		{"standard", []string{"/dev/ttyS0"}},
		{"bogus", nil},
	}

	for _, tt := range tests {
		if got := filterPorts(ports, tt.filter); !reflect.DeepEqual(got, tt.expected) {
			t.Errorf("filterPorts(%q) = %v, expected %v", tt.filter, got, tt.expected)
		}
	}
}

func TestAutoMarker(t *testing.T) {
	if autoMarker("/dev/ttyUSB0", "/dev/ttyUSB0") != "*" {
		t.Error("auto-detected port should be marked")
	}
	if autoMarker("/dev/ttyUSB1", "/dev/ttyUSB0") != " " {
		t.Error("other ports should not be marked")
	}
}

// TestRegisterUploadHooks checks the hooks bracket the upload step and that a
// missing port never fails the upload.
func TestRegisterUploadHooks(t *testing.T) {
	var out bytes.Buffer
	noPorts := func() ([]string, error) { return nil, nil }
	hooks := isp.NewHooks(
		isp.NewResolver(noPorts, &out),
		isp.NewSequencer(isp.SerialOpener{}, isp.WithOutput(&out)),
	)

	o := build.New(build.NewEnv(viper.New()))
	var results []isp.Result
	registerUploadHooks(o, hooks, &results)

	stepRan := false
	err := o.Run(context.Background(), "upload", func(context.Context) error {
		if len(results) != 1 {
			t.Errorf("Expected pre-upload hook before the step, got %d results", len(results))
		}
		stepRan = true
		return nil
	})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !stepRan {
		t.Fatal("upload step did not run")
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Sequence != "boot" || !results[0].Skipped {
		t.Errorf("Unexpected pre-upload result %+v", results[0])
	}
	if results[1].Sequence != "normal" || !results[1].Skipped {
		t.Errorf("Unexpected post-upload result %+v", results[1])
	}
}

func TestRegisterUploadHooksFailedUpload(t *testing.T) {
	var out bytes.Buffer
	noPorts := func() ([]string, error) { return nil, nil }
	hooks := isp.NewHooks(
		isp.NewResolver(noPorts, &out),
		isp.NewSequencer(isp.SerialOpener{}, isp.WithOutput(&out)),
	)

	o := build.New(build.NewEnv(viper.New()))
	var results []isp.Result
	registerUploadHooks(o, hooks, &results)

	uploadErr := errors.New("no ACK from bootloader")
	err := o.Run(context.Background(), "upload", func(context.Context) error { return uploadErr })
	if !errors.Is(err, uploadErr) {
		t.Errorf("Expected upload error, got %v", err)
	}
	if len(results) != 1 || results[0].Sequence != "boot" {
		t.Errorf("Expected only the boot sequence, got %+v", results)
	}
}
