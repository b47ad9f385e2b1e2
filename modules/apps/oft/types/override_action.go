package types

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// OverrideAction is the mutation applied to an override list for one key.
type OverrideAction uint8

const (
	OverrideActionAdd OverrideAction = iota
	OverrideActionRemove
)

// ParseOverrideAction parses "add" or "remove", case insensitive.
func ParseOverrideAction(s string) (OverrideAction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add":
		return OverrideActionAdd, nil
	case "remove":
		return OverrideActionRemove, nil
	default:
		return 0, errorsmod.Wrapf(ErrInvalidOverrideAction, "%q", s)
	}
}

// ParseOverrideActions parses each element of s with ParseOverrideAction.
func ParseOverrideActions(s []string) ([]OverrideAction, error) {
	actions := make([]OverrideAction, 0, len(s))
	for _, a := range s {
		action, err := ParseOverrideAction(a)
		if err != nil {
			return nil, err
		}
		actions = append(actions, action)
	}
	return actions, nil
}

// Validate rejects any tag other than Add or Remove.
func (a OverrideAction) Validate() error {
	switch a {
	case OverrideActionAdd, OverrideActionRemove:
		return nil
	default:
		return errorsmod.Wrapf(ErrInvalidOverrideAction, "tag %d", uint8(a))
	}
}

func (a OverrideAction) String() string {
	switch a {
	case OverrideActionAdd:
		return "add"
	case OverrideActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

func (a OverrideAction) MarshalText() ([]byte, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return []byte(a.String()), nil
}

func (a *OverrideAction) UnmarshalText(text []byte) error {
	action, err := ParseOverrideAction(string(text))
	if err != nil {
		return err
	}
	*a = action
	return nil
}
