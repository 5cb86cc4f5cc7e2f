package domain

// TurnLabel names a bounded working period within a work day.
type TurnLabel string

const (
	TurnFirst  TurnLabel = "primer_turno"
	TurnSecond TurnLabel = "segundo_turno"
)

// TurnInfo is the result of identifying which turn, if any, is currently
// open at a location on a given work date.
type TurnInfo struct {
	// Turn is nil when no turn is open (too early, waiting for the second
	// turn window, or both turns already closed).
	Turn       *TurnLabel `json:"turn"`
	TurnNumber int        `json:"turnNumber"` // 1 or 2, 0 when Turn is nil
	Message    string     `json:"message"`
	Closable   bool       `json:"closable"`

	// Degraded is set when the closings lookup failed and the identifier
	// fell back to its first-turn default instead of returning an error.
	Degraded bool `json:"degraded"`
}
