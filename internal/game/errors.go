package game

import "errors"

var (
	// ErrValidation covers unknown type or upgrade ids and malformed amounts.
	ErrValidation = errors.New("validation failed")

	// ErrCapacity is returned when an add would push the inventory past its capacity.
	ErrCapacity = errors.New("inventory full")

	// ErrAffordability is returned when the player cannot cover an upgrade cost.
	ErrAffordability = errors.New("insufficient credits")

	// ErrMaxLevel is returned when an upgrade is already at its maximum level.
	ErrMaxLevel = errors.New("upgrade at max level")

	// ErrAlreadyCollected is returned when a collect targets an entity that is
	// no longer live. Safe to ignore; the first collect won.
	ErrAlreadyCollected = errors.New("entity already collected")

	// ErrCooldown is returned when the collector has not finished its cooldown.
	ErrCooldown = errors.New("collector on cooldown")

	// ErrConfiguration indicates invalid static configuration (empty spawn
	// table, inverted zone bounds). These are programmer/config errors.
	ErrConfiguration = errors.New("invalid configuration")
)
