package blend2d

/*
#include <blend2d.h>
*/
import "C"

// ExtendMode determines how a gradient or pattern extends beyond its bounds.
type ExtendMode uint32

const (
	// ExtendPad pads both axes.
	ExtendPad = ExtendMode(C.BL_EXTEND_MODE_PAD)
	// ExtendRepeat repeats on both axes.
	ExtendRepeat = ExtendMode(C.BL_EXTEND_MODE_REPEAT)
	// ExtendReflect reflects on both axes.
	ExtendReflect = ExtendMode(C.BL_EXTEND_MODE_REFLECT)
	// ExtendPadXRepeatY pads on the x axis and repeats on the y axis.
	ExtendPadXRepeatY = ExtendMode(C.BL_EXTEND_MODE_PAD_X_REPEAT_Y)
	// ExtendPadXReflectY pads on the x axis and reflects on the y axis.
	ExtendPadXReflectY = ExtendMode(C.BL_EXTEND_MODE_PAD_X_REFLECT_Y)
	// ExtendRepeatXPadY repeats on the x axis and pads on the y axis.
	ExtendRepeatXPadY = ExtendMode(C.BL_EXTEND_MODE_REPEAT_X_PAD_Y)
	// ExtendRepeatXReflectY repeats on the x axis and reflects on the y axis.
	ExtendRepeatXReflectY = ExtendMode(C.BL_EXTEND_MODE_REPEAT_X_REFLECT_Y)
	// ExtendReflectXPadY reflects on the x axis and pads on the y axis.
	ExtendReflectXPadY = ExtendMode(C.BL_EXTEND_MODE_REFLECT_X_PAD_Y)
	// ExtendReflectXRepeatY reflects on the x axis and repeats on the y axis.
	ExtendReflectXRepeatY = ExtendMode(C.BL_EXTEND_MODE_REFLECT_X_REPEAT_Y)
)
