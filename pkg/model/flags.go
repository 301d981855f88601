package model

// SessionFlags is the bitmask of simultaneously active flag conditions as
// delivered by the simulator.
type SessionFlags int64

const (
	FlagCheckered SessionFlags = 1 << iota
	FlagWhite
	FlagGreen
	FlagYellow
	FlagRed
	FlagBlue
	FlagDebris
	FlagCrossed
	FlagYellowWaving
	FlagOneLapToGreen
	FlagGreenHeld
	FlagTenToGo
	FlagFiveToGo
	FlagRandomWaving
	FlagCaution
	FlagCautionWaving
)

const (
	FlagStartHidden SessionFlags = 1 << (28 + iota)
	FlagStartReady
	FlagStartSet
	FlagStartGo
)

func (f SessionFlags) Has(mask SessionFlags) bool {
	return f&mask != 0
}
