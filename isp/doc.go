// Package isp drives a microcontroller into and out of its ROM bootloader by
// toggling the DTR and RTS lines of its serial adapter around a firmware upload.
//
// The wiring is fixed: DTR drives the reset input (low = held in reset) and
// RTS drives boot-select (high = bootloader, low = user flash).
//
//	hooks := isp.NewHooks(isp.NewResolver(serial.ListPorts, os.Stdout),
//	    isp.NewSequencer(isp.SerialOpener{}))
//
//	hooks.PreUpload(env)  // device now runs its bootloader
//	// ... upload firmware ...
//	hooks.PostUpload(env) // device runs the new firmware
//
// Failures never abort the caller. They are printed and returned in a Result.
package isp
