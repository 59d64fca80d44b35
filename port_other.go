//go:build !linux

package serial

import (
	"errors"
	"fmt"
	"sync"

	bugst "go.bug.st/serial"
)

// port wraps a go.bug.st/serial port on platforms without the termios backend.
// DTR and RTS cannot be read back there, so the last driven levels are tracked.
type port struct {
	mu     sync.RWMutex
	p      bugst.Port
	config Config
	closed bool
	dtr    bool
	rts    bool
}

var _ Port = (*port)(nil)

func validateBaudRate(rate int) error {
	if rate <= 0 {
		return ErrInvalidBaudRate
	}
	return nil
}

func toMode(config Config) *bugst.Mode {
	mode := &bugst.Mode{
		BaudRate: config.BaudRate,
		DataBits: config.DataBits,
		StopBits: bugst.OneStopBit,
	}
	if config.StopBits == 2 {
		mode.StopBits = bugst.TwoStopBits
	}

	switch config.Parity {
	case ParityOdd:
		mode.Parity = bugst.OddParity
	case ParityEven:
		mode.Parity = bugst.EvenParity
	case ParityMark:
		mode.Parity = bugst.MarkParity
	case ParitySpace:
		mode.Parity = bugst.SpaceParity
	default:
		mode.Parity = bugst.NoParity
	}

	if config.InitialDTR != nil || config.InitialRTS != nil {
		// Drivers assert both lines on open unless told otherwise
		bits := &bugst.ModemOutputBits{DTR: true, RTS: true}
		if config.InitialDTR != nil {
			bits.DTR = *config.InitialDTR
		}
		if config.InitialRTS != nil {
			bits.RTS = *config.InitialRTS
		}
		mode.InitialStatusBits = bits
	}
	return mode
}

// classifyOpenError maps go.bug.st port errors onto the package sentinels
func classifyOpenError(err error) error {
	var pe *bugst.PortError
	if !errors.As(err, &pe) {
		return err
	}
	switch pe.Code() {
	case bugst.PortNotFound:
		return ErrDeviceNotFound
	case bugst.PermissionDenied:
		return ErrPermissionDenied
	case bugst.PortBusy:
		return ErrDeviceInUse
	case bugst.InvalidSpeed:
		return ErrInvalidBaudRate
	default:
		return err
	}
}

// Open opens a serial port with the given device path and options
func Open(device string, opts ...Option) (Port, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}

	mode := toMode(config)
	p, err := bugst.Open(device, mode)
	if err != nil {
		return nil, wrapOpenError(device, err, classifyOpenError(err))
	}

	if err := p.SetReadTimeout(config.ReadTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to set read timeout: %w", err)
	}

	po := &port{p: p, config: config, dtr: true, rts: true}
	if mode.InitialStatusBits != nil {
		po.dtr = mode.InitialStatusBits.DTR
		po.rts = mode.InitialStatusBits.RTS
	}
	return po, nil
}

// Close closes the serial port
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	p.closed = true
	return p.p.Close()
}

// GetModemSignals returns current state of all modem control signals
func (p *port) GetModemSignals() (ModemSignals, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ModemSignals{}, ErrPortClosed
	}

	bits, err := p.p.GetModemStatusBits()
	if err != nil {
		return ModemSignals{}, err
	}
	return ModemSignals{
		CTS: bits.CTS,
		DSR: bits.DSR,
		RI:  bits.RI,
		DCD: bits.DCD,
		RTS: p.rts,
		DTR: p.dtr,
	}, nil
}

// SetDTR sets the DTR signal state
func (p *port) SetDTR(state bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	if err := p.p.SetDTR(state); err != nil {
		return err
	}
	p.dtr = state
	return nil
}

// GetDTR returns the last driven DTR state
func (p *port) GetDTR() (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false, ErrPortClosed
	}
	return p.dtr, nil
}

// SetRTS sets the RTS signal state
func (p *port) SetRTS(state bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}
	if err := p.p.SetRTS(state); err != nil {
		return err
	}
	p.rts = state
	return nil
}

// GetRTS returns the last driven RTS state
func (p *port) GetRTS() (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return false, ErrPortClosed
	}
	return p.rts, nil
}
