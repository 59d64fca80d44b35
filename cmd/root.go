/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ispreset",
	Short: "Toggle DTR/RTS to move a microcontroller in and out of its bootloader",
	Long: `Drive the DTR and RTS lines of a serial adapter to reset a microcontroller
into its ROM bootloader before a firmware upload, and back into normal run mode
afterwards.

Wiring convention:
  DTR -> reset       (LOW holds the target in reset)
  RTS -> boot select (HIGH selects the bootloader, LOW selects user flash)

The port is taken from --upload-port or the UPLOAD_PORT environment variable.
When neither is set, the first serial port found on the system is used.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("upload-port", "p", "", "Serial port of the target (default: first port found)")
	viper.BindPFlag("upload_port", rootCmd.PersistentFlags().Lookup("upload-port"))
}

// initConfig reads variables such as UPLOAD_PORT from the environment
func initConfig() {
	viper.AutomaticEnv()
}
