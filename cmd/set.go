/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	serial "github.com/allbin/go-serial-isp"
	"github.com/spf13/cobra"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set [port]",
	Short: "Drive DTR and/or RTS to a fixed level",
	Long: `Manually set the DTR and RTS lines, for checking the reset and boot-select
wiring on the bench. Lines not given keep their current level, and the levels
stay in place after the command exits.

Examples:
  ispreset set /dev/ttyUSB0 --dtr low           # hold the target in reset
  ispreset set /dev/ttyUSB0 --dtr high --rts low
  ispreset set --rts on

Valid states: high, low, on, off, true, false, 1, 0`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return errors.New("accepts at most one port argument")
		}
		dtr, _ := cmd.Flags().GetString("dtr")
		rts, _ := cmd.Flags().GetString("rts")
		if dtr == "" && rts == "" {
			return errors.New("requires --dtr and/or --rts")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		dtrArg, _ := cmd.Flags().GetString("dtr")
		rtsArg, _ := cmd.Flags().GetString("rts")

		var dtr, rts *bool
		for _, f := range []struct {
			arg string
			dst **bool
		}{{dtrArg, &dtr}, {rtsArg, &rts}} {
			if f.arg == "" {
				continue
			}
			state, err := parseSignalState(f.arg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			*f.dst = &state
		}

		portPath := resolvePortArg(args)

		port, err := serial.Open(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening port: %v\n", err)
			os.Exit(1)
		}
		defer port.Close()

		if dtr != nil {
			if err := port.SetDTR(*dtr); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting DTR: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("DTR set to %s on %s\n", formatSignalState(*dtr), portPath)
		}
		if rts != nil {
			if err := port.SetRTS(*rts); err != nil {
				fmt.Fprintf(os.Stderr, "Error setting RTS: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("RTS set to %s on %s\n", formatSignalState(*rts), portPath)
		}
	},
}

func parseSignalState(state string) (bool, error) {
	switch strings.ToLower(state) {
	case "high", "on", "true", "1":
		return true, nil
	case "low", "off", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid state: %s (valid: high, low, on, off, true, false, 1, 0)", state)
	}
}

func init() {
	rootCmd.AddCommand(setCmd)

	setCmd.Flags().String("dtr", "", "DTR level (reset line)")
	setCmd.Flags().String("rts", "", "RTS level (boot-select line)")
}
