package types

import (
	"strconv"

	"cosmossdk.io/core/event"
)

// OFT policy events
const (
	EventTypeOFTStoreInitialized                  = "oft_store_initialized"
	EventTypeRateLimitOverrideUpdated             = "rate_limit_override_updated"
	EventTypeRateLimitOverrideTransferIDUpdated   = "rate_limit_override_transfer_id_updated"
	EventTypeRateLimitOverrideTriggered           = "rate_limit_override_triggered"
	EventTypeRateLimitOverrideTransferIDTriggered = "rate_limit_override_transfer_id_triggered"
	EventTypePauseUpdated                         = "pause_updated"

	AttributeKeyEscrow     = "escrow"
	AttributeKeyAdmin      = "admin"
	AttributeKeyAddress    = "address"
	AttributeKeyTransferID = "transfer_id"
	AttributeKeyAction     = "action"
	AttributeKeyAmountLD   = "amount_ld"
	AttributeKeyPaused     = "paused"
)

// Event is a notification produced by a single state change or override bypass.
// Events are returned to the caller in the order they occurred.
type Event interface {
	EventType() string
	Attributes() []event.Attribute
}

var (
	_ Event = EventOFTStoreInitialized{}
	_ Event = EventRateLimitOverrideUpdated{}
	_ Event = EventRateLimitOverrideTransferIDUpdated{}
	_ Event = EventRateLimitOverrideTriggered{}
	_ Event = EventRateLimitOverrideTransferIDTriggered{}
	_ Event = EventPauseUpdated{}
)

type EventOFTStoreInitialized struct {
	Escrow PrincipalID
	Admin  PrincipalID
}

func (EventOFTStoreInitialized) EventType() string { return EventTypeOFTStoreInitialized }

func (e EventOFTStoreInitialized) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyEscrow, Value: e.Escrow.String()},
		{Key: AttributeKeyAdmin, Value: e.Admin.String()},
	}
}

// EventRateLimitOverrideUpdated is emitted for each principal added to or
// removed from the override list.
type EventRateLimitOverrideUpdated struct {
	Address PrincipalID
	Action  OverrideAction
}

func (EventRateLimitOverrideUpdated) EventType() string { return EventTypeRateLimitOverrideUpdated }

func (e EventRateLimitOverrideUpdated) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyAddress, Value: e.Address.String()},
		{Key: AttributeKeyAction, Value: e.Action.String()},
	}
}

// EventRateLimitOverrideTransferIDUpdated is emitted for each transfer id added
// to or removed from the override list.
type EventRateLimitOverrideTransferIDUpdated struct {
	TransferID TransferID
	Action     OverrideAction
}

func (EventRateLimitOverrideTransferIDUpdated) EventType() string {
	return EventTypeRateLimitOverrideTransferIDUpdated
}

func (e EventRateLimitOverrideTransferIDUpdated) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyTransferID, Value: e.TransferID.String()},
		{Key: AttributeKeyAction, Value: e.Action.String()},
	}
}

// EventRateLimitOverrideTriggered is emitted when a transfer bypasses the rate
// limiter because its sender is overridden.
type EventRateLimitOverrideTriggered struct {
	Address  PrincipalID
	AmountLD uint64
}

func (EventRateLimitOverrideTriggered) EventType() string { return EventTypeRateLimitOverrideTriggered }

func (e EventRateLimitOverrideTriggered) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyAddress, Value: e.Address.String()},
		{Key: AttributeKeyAmountLD, Value: strconv.FormatUint(e.AmountLD, 10)},
	}
}

// EventRateLimitOverrideTransferIDTriggered is emitted when a transfer bypasses
// the rate limiter because its transfer id is overridden.
type EventRateLimitOverrideTransferIDTriggered struct {
	TransferID TransferID
	AmountLD   uint64
}

func (EventRateLimitOverrideTransferIDTriggered) EventType() string {
	return EventTypeRateLimitOverrideTransferIDTriggered
}

func (e EventRateLimitOverrideTransferIDTriggered) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyTransferID, Value: e.TransferID.String()},
		{Key: AttributeKeyAmountLD, Value: strconv.FormatUint(e.AmountLD, 10)},
	}
}

type EventPauseUpdated struct {
	Paused bool
}

func (EventPauseUpdated) EventType() string { return EventTypePauseUpdated }

func (e EventPauseUpdated) Attributes() []event.Attribute {
	return []event.Attribute{
		{Key: AttributeKeyPaused, Value: strconv.FormatBool(e.Paused)},
	}
}
