package timer

import "strings"

// Signals is the set of presentation commands an operation asks the host to
// carry out. They are fire-and-forget.
type Signals uint8

const (
	SignalMinimize Signals = 1 << iota
	SignalEnterFullscreen
	SignalExitFullscreen
)

// Has reports whether every signal in want is set.
func (s Signals) Has(want Signals) bool {
	return want != 0 && s&want == want
}

func (s Signals) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(SignalMinimize) {
		parts = append(parts, "minimize")
	}
	if s.Has(SignalEnterFullscreen) {
		parts = append(parts, "enter-fullscreen")
	}
	if s.Has(SignalExitFullscreen) {
		parts = append(parts, "exit-fullscreen")
	}
	return strings.Join(parts, "|")
}
