package isp

import (
	"fmt"
	"io"
	"os"
)

// UploadPortVar is the build environment variable holding a configured port
const UploadPortVar = "$UPLOAD_PORT"

// Environment is the read-only view of the build environment the hooks need
type Environment interface {
	// Subst expands variable references in s, returning "" for undefined ones
	Subst(s string) string
}

// PortLister enumerates the serial ports visible to the system, in a stable order
type PortLister func() ([]string, error)

// Resolver picks the serial port to use for a sequence. It keeps no state
// between calls.
type Resolver struct {
	list PortLister
	out  io.Writer
}

// NewResolver returns a Resolver that enumerates with list and reports to out.
// A nil out writes to stdout.
func NewResolver(list PortLister, out io.Writer) *Resolver {
	if out == nil {
		out = os.Stdout
	}
	return &Resolver{list: list, out: out}
}

// Resolve returns configured unchanged when it is non-empty. Otherwise it
// returns the first enumerated port, or false when there is none.
func (r *Resolver) Resolve(configured string) (string, bool) {
	if configured != "" {
		return configured, true
	}

	ports, err := r.list()
	if err != nil {
		fmt.Fprintf(r.out, "⚠️ No COM port found! (%v)\n", err)
		return "", false
	}
	if len(ports) == 0 {
		fmt.Fprintln(r.out, "⚠️ No COM port found!")
		return "", false
	}

	fmt.Fprintf(r.out, "Auto-detected port: %s\n", ports[0])
	return ports[0], true
}

// ResolveEnv resolves using the upload port configured in env
func (r *Resolver) ResolveEnv(env Environment) (string, bool) {
	return r.Resolve(env.Subst(UploadPortVar))
}
