package circuit

// Reserved module names. The button exists only as the source of the seed
// pulse; the broadcaster is the network's fixed entry point.
const (
	Button      = "button"
	Broadcaster = "broadcaster"
)

// Level is the polarity of a pulse.
type Level bool

// The two pulse polarities.
const (
	Low  Level = false
	High Level = true
)

// String returns "low" or "high".
func (l Level) String() string {
	if l == High {
		return "high"
	}
	return "low"
}

// Pulse is a unit message carrying a Level from one module to another.
//
// Pulses are plain values. They exist only transiently in the engine's
// queue and are never retained by any module.
type Pulse struct {
	Source      string
	Destination string
	Level       Level
}
