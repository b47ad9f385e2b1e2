package oftesting

import (
	testifysuite "github.com/stretchr/testify/suite"

	"cosmossdk.io/core/event"

	"github.com/oft-labs/oft-policy/modules/apps/oft/types"
)

// AssertEvents asserts that every expected event is present in actual, in the
// same relative order, with at least the expected attributes.
func AssertEvents(
	suite *testifysuite.Suite,
	expected []types.Event,
	actual []types.Event,
) {
	next := 0
	for _, expectedEvent := range expected {
		found := false
		for ; next < len(actual); next++ {
			if shouldProcessEvent(expectedEvent, actual[next]) {
				found = true
				next++
				break
			}
		}
		suite.Require().True(found, "event: %s %v was not found in events", expectedEvent.EventType(), expectedEvent.Attributes())
	}
}

// ParseOverrideUpdates returns the principals and actions of every principal
// override update in events, in order.
func ParseOverrideUpdates(events []types.Event) ([]types.PrincipalID, []types.OverrideAction) {
	var (
		addresses []types.PrincipalID
		actions   []types.OverrideAction
	)
	for _, ev := range events {
		if update, ok := ev.(types.EventRateLimitOverrideUpdated); ok {
			addresses = append(addresses, update.Address)
			actions = append(actions, update.Action)
		}
	}
	return addresses, actions
}

func shouldProcessEvent(expectedEvent, actualEvent types.Event) bool {
	if expectedEvent.EventType() != actualEvent.EventType() {
		return false
	}

	for _, attr := range expectedEvent.Attributes() {
		if !containsAttribute(actualEvent.Attributes(), attr.Key, attr.Value) {
			return false
		}
	}
	return true
}

func containsAttribute(attrs []event.Attribute, key, value string) bool {
	for _, attr := range attrs {
		if attr.Key == key && attr.Value == value {
			return true
		}
	}
	return false
}
