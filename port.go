package serial

// Port represents an open serial port and its modem control lines
type Port interface {
	Close() error

	// Modem signal control and monitoring
	GetModemSignals() (ModemSignals, error)
	SetDTR(state bool) error
	GetDTR() (bool, error)
	SetRTS(state bool) error
	GetRTS() (bool, error)
}

// Parity represents the parity mode
type Parity int

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
	ParityMark
	ParitySpace
)

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}
