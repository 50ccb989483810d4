package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MotionData drives a mobile wall along a looping path. Each sequence yields
// an offset from the origin.
type MotionData struct {
	X, Y             *gween.Sequence
	OriginX, OriginY float64
}

var Motion = donburi.NewComponentType[MotionData]()
