/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// bootCmd represents the boot command
var bootCmd = &cobra.Command{
	Use:   "boot",
	Short: "Reset the target into its ROM bootloader",
	Long: `Run the ISP boot sequence: DTR LOW and RTS HIGH for 100ms, then DTR HIGH
with RTS still HIGH for 50ms. The target leaves reset running its bootloader.

Use this as the pre-upload step of a build tool. Failures are reported but do
not change the exit status unless --strict is given.

Examples:
  ispreset boot
  ispreset boot --upload-port /dev/ttyUSB0
  UPLOAD_PORT=/dev/ttyACM0 ispreset boot --strict`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		result := newHooks(os.Stdout).PreUpload(newEnv())
		exitOnStrictFailure(cmd, result)
	},
}

// normalCmd represents the normal command
var normalCmd = &cobra.Command{
	Use:   "normal",
	Short: "Reset the target into its application firmware",
	Long: `Run the normal-mode sequence: DTR LOW and RTS LOW for 100ms, then DTR HIGH.
The target leaves reset running from user flash.

Use this as the post-upload step of a build tool. Failures are reported but do
not change the exit status unless --strict is given.

Examples:
  ispreset normal
  ispreset normal -p /dev/ttyUSB0`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		result := newHooks(os.Stdout).PostUpload(newEnv())
		exitOnStrictFailure(cmd, result)
	},
}

func init() {
	rootCmd.AddCommand(bootCmd)
	rootCmd.AddCommand(normalCmd)

	bootCmd.Flags().Bool("strict", false, "Exit with status 1 when the sequence does not complete")
	normalCmd.Flags().Bool("strict", false, "Exit with status 1 when the sequence does not complete")
}
