// Package serial provides serial port access focused on the modem control
// lines, for tools that reset or mode-switch microcontrollers through DTR and RTS.
//
// On Linux the port is driven directly through termios and the TIOCM ioctls.
// Other platforms use go.bug.st/serial.
//
// # Basic Usage
//
// Open a serial port with default configuration (115200 8N1):
//
//	port, err := serial.Open("/dev/ttyUSB0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer port.Close()
//
// # Configuration Options
//
// Use functional options for custom configuration:
//
//	port, err := serial.Open("/dev/ttyUSB0",
//	    serial.WithBaudRate(115200),
//	    serial.WithReadTimeout(time.Second),
//	    serial.WithInitialDTR(true),
//	)
//
// # Control Lines
//
//	err = port.SetDTR(false)
//	err = port.SetRTS(true)
//
//	signals, err := port.GetModemSignals()
//	fmt.Printf("DTR=%v RTS=%v CTS=%v DSR=%v\n",
//	    signals.DTR, signals.RTS, signals.CTS, signals.DSR)
//
// The Linux backend leaves HUPCL cleared, so the levels driven last stay on
// the lines after Close until another process changes them or the adapter
// is unplugged.
//
// # Port Discovery
//
//	ports, err := serial.ListPorts()
//	for _, portPath := range ports {
//	    info, _ := serial.GetPortInfo(portPath)
//	    fmt.Printf("%s: %s (VID=%s PID=%s Serial=%s)\n",
//	        info.Path, info.Description, info.VendorID, info.ProductID, info.SerialNumber)
//	}
//
// ListPorts returns paths sorted, so the first entry is stable between calls.
//
// # Error Handling
//
// Open failures wrap ErrDeviceNotFound, ErrPermissionDenied or ErrDeviceInUse:
//
//	if errors.Is(err, serial.ErrDeviceInUse) {
//	    // another process holds the port
//	}
package serial
