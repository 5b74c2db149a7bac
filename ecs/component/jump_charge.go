package component

import "fmt"

type ChargePhase uint8

const (
	ChargeIdle ChargePhase = iota
	ChargeCharging
	ChargeExhausted
)

func (p ChargePhase) String() string {
	switch p {
	case ChargeIdle:
		return "idle"
	case ChargeCharging:
		return "charging"
	case ChargeExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("ChargePhase(%d)", uint8(p))
	}
}

// JumpCharge is the juice meter. Elapsed is only meaningful while Charging.
type JumpCharge struct {
	Phase   ChargePhase
	Elapsed float64
}

func Idle() JumpCharge { return JumpCharge{Phase: ChargeIdle} }

func Charging(elapsed float64) JumpCharge {
	return JumpCharge{Phase: ChargeCharging, Elapsed: elapsed}
}

func Exhausted() JumpCharge { return JumpCharge{Phase: ChargeExhausted} }

func (c JumpCharge) IsCharging() bool { return c.Phase == ChargeCharging }

func (c JumpCharge) String() string {
	if c.Phase == ChargeCharging {
		return fmt.Sprintf("charging(%.3fs)", c.Elapsed)
	}
	return c.Phase.String()
}
