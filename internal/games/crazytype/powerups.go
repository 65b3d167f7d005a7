package crazytype

// PowerUpKind identifies a power-up.
type PowerUpKind int

const (
	PowerUpDouble PowerUpKind = iota // doubles keystroke points for a while
	PowerUpSlow                      // slows falling and spawning for a while
	PowerUpClear                     // removes every word at once
	powerUpKindCount
)

// String returns the badge label for the power-up.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpDouble:
		return "DOUBLE"
	case PowerUpSlow:
		return "SLOW"
	case PowerUpClear:
		return "CLEAR"
	default:
		return "?"
	}
}

// PowerUpStatus is the presentation view of a timed power-up.
type PowerUpStatus struct {
	Kind      PowerUpKind
	Remaining float64 // seconds
}

// powerUpTimers holds countdowns for the timed power-ups.
// Expiry is checked on every Advance; nothing is scheduled elsewhere.
type powerUpTimers struct {
	remaining [2]float64 // indexed by PowerUpDouble, PowerUpSlow
}

func (p *powerUpTimers) reset() {
	p.remaining = [2]float64{}
}

// activate starts or refreshes a timed power-up. Durations never stack.
func (p *powerUpTimers) activate(kind PowerUpKind, duration float64) {
	if kind != PowerUpDouble && kind != PowerUpSlow {
		return
	}
	p.remaining[kind] = duration
}

func (p *powerUpTimers) active(kind PowerUpKind) bool {
	if kind != PowerUpDouble && kind != PowerUpSlow {
		return false
	}
	return p.remaining[kind] > 0
}

// tick counts down and returns the kinds that expired during this step.
func (p *powerUpTimers) tick(dt float64) []PowerUpKind {
	var expired []PowerUpKind
	for i := range p.remaining {
		if p.remaining[i] <= 0 {
			continue
		}
		p.remaining[i] -= dt
		if p.remaining[i] <= 0 {
			p.remaining[i] = 0
			expired = append(expired, PowerUpKind(i))
		}
	}
	return expired
}

func (p *powerUpTimers) statuses() []PowerUpStatus {
	var out []PowerUpStatus
	for i, r := range p.remaining {
		if r > 0 {
			out = append(out, PowerUpStatus{Kind: PowerUpKind(i), Remaining: r})
		}
	}
	return out
}
