package build

import (
	"testing"

	"github.com/spf13/viper"
)

func TestEnvSubst(t *testing.T) {
	v := viper.New()
	v.Set("upload_port", "/dev/ttyUSB0")
	v.Set("upload_speed", 115200)
	env := NewEnv(v)

	tests := []struct {
		in       string
		expected string
	}{
		{"$UPLOAD_PORT", "/dev/ttyUSB0"},
		{"${UPLOAD_PORT}", "/dev/ttyUSB0"},
		{"$UPLOAD_PORT@$UPLOAD_SPEED", "/dev/ttyUSB0@115200"},
		{"$UNDEFINED", ""},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := env.Subst(tt.in); got != tt.expected {
			t.Errorf("Subst(%q) = %q, expected %q", tt.in, got, tt.expected)
		}
	}
}

func TestEnvSubstReadsEnvironment(t *testing.T) {
	t.Setenv("UPLOAD_PORT", "/dev/ttyACM1")

	v := viper.New()
	v.AutomaticEnv()
	env := NewEnv(v)

	if got := env.Subst("$UPLOAD_PORT"); got != "/dev/ttyACM1" {
		t.Errorf("Subst($UPLOAD_PORT) = %q, expected /dev/ttyACM1", got)
	}
}
