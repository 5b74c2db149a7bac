package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/jumpwiz/ecs/component"
)

// Terminals report key presses and auto-repeat but never releases, so a key
// counts as held until a timeout passes without another event for it. The
// first repeat arrives after the terminal's repeat delay (250-600 ms), later
// ones at the much shorter repeat rate.
const (
	firstRepeatTimeout = 650 * time.Millisecond
	repeatTimeout      = 150 * time.Millisecond
)

type keyState struct {
	last      time.Time
	repeating bool
}

type keyID int

const (
	keyLeft keyID = iota
	keyRight
	keyJump
)

// KeyInput turns tcell key events into per-tick intent.
type KeyInput struct {
	now      func() time.Time
	keys     map[keyID]keyState
	jumpHeld bool
}

func NewKeyInput(now func() time.Time) *KeyInput {
	if now == nil {
		now = time.Now
	}
	return &KeyInput{now: now, keys: make(map[keyID]keyState)}
}

// HandleKey records a key event. It returns false for keys it ignores.
func (k *KeyInput) HandleKey(ev *tcell.EventKey) bool {
	id, ok := mapKey(ev)
	if !ok {
		return false
	}
	now := k.now()
	k.keys[id] = keyState{last: now, repeating: k.held(id, now)}
	return true
}

func mapKey(ev *tcell.EventKey) (keyID, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return keyLeft, true
	case tcell.KeyRight:
		return keyRight, true
	case tcell.KeyUp:
		return keyJump, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return keyLeft, true
		case 'd', 'D':
			return keyRight, true
		case ' ', 'w', 'W':
			return keyJump, true
		}
	}
	return 0, false
}

func (k *KeyInput) held(id keyID, now time.Time) bool {
	state, ok := k.keys[id]
	if !ok {
		return false
	}
	timeout := firstRepeatTimeout
	if state.repeating {
		timeout = repeatTimeout
	}
	return now.Sub(state.last) < timeout
}

func (k *KeyInput) Sample() component.Input {
	now := k.now()
	moveX := 0.0
	if k.held(keyLeft, now) {
		moveX -= 1
	}
	if k.held(keyRight, now) {
		moveX += 1
	}

	jump := k.held(keyJump, now)
	in := component.Input{
		MoveX:        moveX,
		JumpPressed:  jump && !k.jumpHeld,
		JumpHeld:     jump,
		JumpReleased: !jump && k.jumpHeld,
	}
	k.jumpHeld = jump
	return in
}
