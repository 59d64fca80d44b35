package build

import (
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment exposes variable substitution to actions
type Environment interface {
	Subst(s string) string
}

// Env resolves $NAME and ${NAME} references against a viper instance.
// Names are looked up lower-cased, so $UPLOAD_PORT reads key upload_port.
type Env struct {
	v *viper.Viper
}

var _ Environment = (*Env)(nil)

// NewEnv returns an Env backed by v
func NewEnv(v *viper.Viper) *Env {
	return &Env{v: v}
}

// Subst expands variable references in s. Undefined variables expand to "".
func (e *Env) Subst(s string) string {
	return os.Expand(s, func(name string) string {
		return e.v.GetString(strings.ToLower(name))
	})
}
