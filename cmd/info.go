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

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info [port]",
	Short: "Show which port would be reset and what is behind it",
	Long: `Resolve the port the reset sequences would use and display its details,
including USB metadata for USB serial adapters.

Examples:
  ispreset info
  ispreset info /dev/ttyACM0
  UPLOAD_PORT=/dev/ttyUSB1 ispreset info`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		portPath := resolvePortArg(args)

		info, err := serial.GetPortInfo(portPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting port info: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Port Information: %s\n\n", info.Path)
		fmt.Printf("  Name:        %s\n", info.Name)
		fmt.Printf("  Description: %s\n", info.Description)

		if !info.IsUSB() {
			return
		}

		fmt.Println("\nUSB Device Information:")
		for _, field := range []struct{ label, value string }{
			{"Vendor ID", info.VendorID},
			{"Product ID", info.ProductID},
			{"Serial", info.SerialNumber},
			{"Interface", info.InterfaceNumber},
			{"Bus", info.BusNumber},
			{"Device", info.DeviceNumber},
			{"Manufacturer", info.Manufacturer},
			{"Product", info.Product},
		} {
			if field.value != "" {
				fmt.Printf("  %-13s %s\n", field.label+":", field.value)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
