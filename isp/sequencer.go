package isp

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Fixed port parameters for line sequences
const (
	BaudRate    = 115200
	ReadTimeout = time.Second
)

// Result reports the outcome of one sequence run
type Result struct {
	Sequence string
	Port     string
	Skipped  bool // no port was available, nothing was touched
	Err      error
}

// OK reports whether the sequence ran to completion
func (r Result) OK() bool {
	return !r.Skipped && r.Err == nil
}

// Config holds the Sequencer configuration
type Config struct {
	Output io.Writer
	Sleep  func(time.Duration)
}

func defaultConfig() Config {
	return Config{
		Output: os.Stdout,
		Sleep:  time.Sleep,
	}
}

// Option is a functional option for configuring the Sequencer
type Option func(*Config)

// WithOutput sets where status and error lines are printed
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		if w != nil {
			c.Output = w
		}
	}
}

// WithSleep replaces the function used to hold line levels
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Config) {
		if sleep != nil {
			c.Sleep = sleep
		}
	}
}

// Sequencer runs control line sequences against a port
type Sequencer struct {
	opener Opener
	config Config
}

// NewSequencer returns a Sequencer that opens ports with opener
func NewSequencer(opener Opener, opts ...Option) *Sequencer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &Sequencer{opener: opener, config: config}
}

// EnterBootMode resets the target into its ROM bootloader
func (s *Sequencer) EnterBootMode(port string) Result {
	return s.Run(port, BootSequence)
}

// RestoreNormalMode resets the target into its application firmware
func (s *Sequencer) RestoreNormalMode(port string) Result {
	return s.Run(port, NormalSequence)
}

// Run drives seq on port. An empty port is a no-op. Errors are printed and
// returned in the Result, never raised.
func (s *Sequencer) Run(port string, seq Sequence) Result {
	result := Result{Sequence: seq.Name, Port: port}
	if port == "" {
		result.Skipped = true
		return result
	}

	fmt.Fprintf(s.config.Output, seq.Start+"\n", port)

	if err := s.drive(port, seq); err != nil {
		fmt.Fprintf(s.config.Output, "❌ Error: %v\n", err)
		result.Err = err
		return result
	}

	fmt.Fprintln(s.config.Output, seq.Done)
	return result
}

// drive opens the port, applies every step and closes the port on all paths
func (s *Sequencer) drive(port string, seq Sequence) (err error) {
	lines, err := s.opener.Open(port, BaudRate, ReadTimeout)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := lines.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", port, cerr)
		}
	}()

	for i, step := range seq.Steps {
		if err := setLevel(lines.SetDTR, step.DTR); err != nil {
			return fmt.Errorf("step %d: set DTR %s: %w", i+1, step.DTR, err)
		}
		if err := setLevel(lines.SetRTS, step.RTS); err != nil {
			return fmt.Errorf("step %d: set RTS %s: %w", i+1, step.RTS, err)
		}
		if step.Hold > 0 {
			s.config.Sleep(step.Hold)
		}
	}
	return nil
}

func setLevel(set func(bool) error, level Level) error {
	switch level {
	case High:
		return set(true)
	case Low:
		return set(false)
	default:
		return nil
	}
}
