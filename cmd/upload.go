/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/allbin/go-serial-isp/internal/build"
	"github.com/allbin/go-serial-isp/isp"
	"github.com/spf13/cobra"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload -- <command> [args...]",
	Short: "Run an upload command wrapped in the boot and normal sequences",
	Long: `Run a firmware upload command as the "upload" step, with the ISP boot
sequence registered as its pre-action and the normal-mode sequence as its
post-action.

The exit status is the upload command's. Reset sequence failures are reported
but never fail the upload. The normal-mode sequence only runs after a
successful upload.

Examples:
  ispreset upload -- stm32flash -w firmware.bin -v /dev/ttyUSB0
  ispreset upload -p /dev/ttyACM0 -- make flash`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		orchestrator := build.New(newEnv())
		var results []isp.Result
		registerUploadHooks(orchestrator, newHooks(os.Stdout), &results)

		fmt.Printf("%s Running %s\n", infoStyle.Render("⚡"), args[0])
		err := orchestrator.Run(ctx, "upload", build.Command(args[0], args[1:]...))

		printSummary(results)

		if err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("✗"), err)
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
				os.Exit(exitErr.ExitCode())
			}
			os.Exit(1)
		}
		fmt.Printf("%s Upload finished\n", successStyle.Render("✓"))
	},
}

// printSummary shows one line per reset sequence that ran around the upload
func printSummary(results []isp.Result) {
	for _, r := range results {
		switch {
		case r.Skipped:
			fmt.Printf("%s %s sequence skipped: no port\n", warnStyle.Render("!"), r.Sequence)
		case r.Err != nil:
			fmt.Printf("%s %s sequence failed on %s\n", warnStyle.Render("!"), r.Sequence, r.Port)
		default:
			fmt.Printf("%s %s sequence on %s\n", successStyle.Render("✓"), r.Sequence, r.Port)
		}
	}
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
