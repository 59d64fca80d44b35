package isp

import "time"

// Level is the target state of a control line within a step
type Level int

const (
	Keep Level = iota // leave the line as it is
	Low
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	default:
		return "KEEP"
	}
}

// Step drives DTR, then RTS, then holds for Hold before the next step
type Step struct {
	DTR  Level
	RTS  Level
	Hold time.Duration
}

// Sequence is a named, timed list of control line steps
type Sequence struct {
	Name  string
	Start string // printed before the port is opened, %s is the port
	Done  string // printed after the port is closed
	Steps []Step
}

// BootSequence holds the target in reset with boot-select raised, then
// releases reset so it starts in its ROM bootloader.
var BootSequence = Sequence{
	Name:  "boot",
	Start: "🔄 ISP Boot Sequence on %s...",
	Done:  "✅ Reset sequence complete!",
	Steps: []Step{
		{DTR: Low, RTS: High, Hold: 100 * time.Millisecond},
		{DTR: High, Hold: 50 * time.Millisecond},
	},
}

// NormalSequence holds the target in reset with boot-select lowered, then
// releases reset so it starts from user flash.
var NormalSequence = Sequence{
	Name:  "normal",
	Start: "🔄 Resetting device on %s...",
	Done:  "✅ Device reset complete!",
	Steps: []Step{
		{DTR: Low, RTS: Low, Hold: 100 * time.Millisecond},
		{DTR: High},
	},
}
