/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"

	serial "github.com/allbin/go-serial-isp"
	"github.com/spf13/cobra"
)

// signalsCmd represents the signals command
var signalsCmd = &cobra.Command{
	Use:   "signals [port]",
	Short: "Display current modem signal states",
	Long: `Display the current state of all modem control signals, with DTR and RTS
read as the target's reset and boot-select inputs.

Without a port argument the configured or auto-detected port is used. Note
that some drivers raise DTR and RTS when a port is opened.

Examples:
  ispreset signals /dev/ttyUSB0
  ispreset signals`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := resolvePortArg(args)

		port, err := serial.Open(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		signals, err := port.GetModemSignals()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading modem signals: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Modem Signals for %s:\n\n", portPath)
		fmt.Printf("  CTS (Clear To Send):       %s\n", formatSignalState(signals.CTS))
		fmt.Printf("  DSR (Data Set Ready):      %s\n", formatSignalState(signals.DSR))
		fmt.Printf("  RI  (Ring Indicator):      %s\n", formatSignalState(signals.RI))
		fmt.Printf("  DCD (Data Carrier Detect): %s\n", formatSignalState(signals.DCD))
		fmt.Printf("  RTS (Request To Send):     %s\n", formatSignalState(signals.RTS))
		fmt.Printf("  DTR (Data Terminal Ready): %s\n", formatSignalState(signals.DTR))

		fmt.Println()
		fmt.Printf("  Reset:       %s\n", describeReset(signals.DTR))
		fmt.Printf("  Boot select: %s\n", describeBootSelect(signals.RTS))
	},
}

func describeReset(dtr bool) string {
	if dtr {
		return "released"
	}
	return warnStyle.Render("held")
}

func describeBootSelect(rts bool) string {
	if rts {
		return infoStyle.Render("bootloader")
	}
	return "user flash"
}

// resolvePortArg returns the explicit port argument or falls back to the
// configured/auto-detected port, exiting when there is none
func resolvePortArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}

	port, ok := newResolver().ResolveEnv(newEnv())
	if !ok {
		os.Exit(1)
	}
	return port
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}
