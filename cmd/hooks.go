/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	serial "github.com/allbin/go-serial-isp"
	"github.com/allbin/go-serial-isp/internal/build"
	"github.com/allbin/go-serial-isp/isp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newEnv exposes the flag/environment configuration as a build environment
func newEnv() *build.Env {
	return build.NewEnv(viper.GetViper())
}

// newResolver picks ports from the system's serial devices
func newResolver() *isp.Resolver {
	return isp.NewResolver(serial.ListPorts, os.Stdout)
}

// newHooks builds upload hooks backed by the real serial ports
func newHooks(out io.Writer) *isp.Hooks {
	return isp.NewHooks(
		isp.NewResolver(serial.ListPorts, out),
		isp.NewSequencer(isp.SerialOpener{}, isp.WithOutput(out)),
	)
}

// registerUploadHooks wires the boot and normal sequences around the upload step
func registerUploadHooks(o *build.Orchestrator, hooks *isp.Hooks, results *[]isp.Result) {
	o.AddPreAction("upload", func(env build.Environment) {
		*results = append(*results, hooks.PreUpload(env))
	})
	o.AddPostAction("upload", func(env build.Environment) {
		*results = append(*results, hooks.PostUpload(env))
	})
}

// exitOnStrictFailure exits 1 when --strict is set and the sequence did not complete
func exitOnStrictFailure(cmd *cobra.Command, result isp.Result) {
	strict, _ := cmd.Flags().GetBool("strict")
	if !strict || result.OK() {
		return
	}
	if result.Skipped {
		fmt.Fprintf(os.Stderr, "%s no serial port available\n", errorStyle.Render("✗"))
	} else {
		fmt.Fprintf(os.Stderr, "%s %s sequence failed: %v\n", errorStyle.Render("✗"), result.Sequence, result.Err)
	}
	os.Exit(1)
}
