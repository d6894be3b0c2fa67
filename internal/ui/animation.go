package ui

import (
	"time"

	"tamagotchi/internal/pet"
)

// AnimationType represents the type of action animation
type AnimationType int

const (
	AnimNone AnimationType = iota
	AnimEat
	AnimSleep
)

// Animation holds the current animation state
type Animation struct {
	Type      AnimationType
	Frame     int
	StartTime time.Time
}

// AnimationFrames contains ASCII art frames for each animation type
var AnimationFrames = map[AnimationType][]string{
	AnimEat: {
		`  ◕   ◕
    ◯ω◯
 *munch*
  ‾‾‾‾‾‾`,
		`  ◕   ◕
     ω    🍎
 *munch*
  ‾‾‾‾‾‾`,
		`  ◕   ◕
    ◯ω◯
 *munch munch*
  ‾‾‾‾‾‾`,
	},
	AnimSleep: {
		`  ◕   ◕
     ω
 Z
  ‾‾‾‾‾‾`,
		`  -   -
     ω
 Zz..
  ‾‾‾‾‾‾`,
		`  -   -
     ω
 Zzz...
  ‾‾‾‾‾‾`,
	},
}

// AnimationFrameDuration is how long each frame displays
const AnimationFrameDuration = 400 * time.Millisecond

// AnimationForVisual picks the animation for an action's visual override.
func AnimationForVisual(visual string) AnimationType {
	switch visual {
	case pet.VisualEating:
		return AnimEat
	case pet.VisualSleeping:
		return AnimSleep
	default:
		return AnimNone
	}
}

// GetAnimationFrame returns the current frame for an animation
func GetAnimationFrame(anim Animation) string {
	frames := AnimationFrames[anim.Type]
	if len(frames) == 0 {
		return ""
	}
	if anim.Frame >= len(frames) {
		return frames[len(frames)-1]
	}
	return frames[anim.Frame]
}

// IsAnimationComplete returns true if the animation has finished
func IsAnimationComplete(anim Animation) bool {
	frames := AnimationFrames[anim.Type]
	return anim.Frame >= len(frames)
}

// AnimationTotalFrames returns the number of frames for an animation type
func AnimationTotalFrames(animType AnimationType) int {
	return len(AnimationFrames[animType])
}
