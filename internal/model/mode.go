package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMode is returned when a mode is neither "happy" nor "sad".
var ErrInvalidMode = errors.New("invalid mode")

// Mode selects the tone that rewrites and quotes target.
type Mode string

const (
	ModeHappy Mode = "happy"
	ModeSad   Mode = "sad"
)

// Modes lists every supported mode in display order.
var Modes = []Mode{ModeHappy, ModeSad}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeHappy, ModeSad:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// StorageKey is the key a mode's document is persisted under.
func (m Mode) StorageKey() string {
	return string(m) + "-key"
}

// Keyword is the literal text that triggers a sentiment mark in this mode.
func (m Mode) Keyword() string {
	return string(m)
}

func (m Mode) String() string {
	return string(m)
}
