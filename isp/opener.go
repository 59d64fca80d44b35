package isp

import (
	"time"

	serial "github.com/allbin/go-serial-isp"
)

// Lines is the part of an open serial handle a sequence drives
type Lines interface {
	SetDTR(state bool) error
	SetRTS(state bool) error
	Close() error
}

// Opener opens a port for line control
type Opener interface {
	Open(port string, baudRate int, readTimeout time.Duration) (Lines, error)
}

// SerialOpener opens ports through the serial package
type SerialOpener struct{}

// Open opens port with the given framing
func (SerialOpener) Open(port string, baudRate int, readTimeout time.Duration) (Lines, error) {
	p, err := serial.Open(port,
		serial.WithBaudRate(baudRate),
		serial.WithReadTimeout(readTimeout),
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
