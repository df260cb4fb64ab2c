package dapptesting

import (
	"errors"

	testifysuite "github.com/stretchr/testify/suite"

	abci "github.com/cometbft/cometbft/abci/types"

	"github.com/cosmos/xcall-dapp/modules/apps/hello-world/types"
)

// ParseEventsByType returns the events of the given type, in emission order.
func ParseEventsByType(events []abci.Event, eventType string) []abci.Event {
	var found []abci.Event
	for _, ev := range events {
		if ev.Type == eventType {
			found = append(found, ev)
		}
	}
	return found
}

// ParseContractEvent returns the from and data attributes of a MessageReceived or
// RollbackDataReceived event.
func ParseContractEvent(ev abci.Event) (string, string, error) {
	from, found := attributeByKey(ev.Attributes, types.AttributeKeyFrom)
	if !found {
		return "", "", errors.New("from event attribute not found")
	}

	data, found := attributeByKey(ev.Attributes, types.AttributeKeyData)
	if !found {
		return "", "", errors.New("data event attribute not found")
	}

	return from.Value, data.Value, nil
}

// AssertEvents asserts that expected events are present in the actual events.
func AssertEvents(
	suite *testifysuite.Suite,
	expected []abci.Event,
	actual []abci.Event,
) {
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range actual {
			if expectedEvent.Type != actualEvent.Type {
				continue
			}

			attributeMatch := true
			for _, expectedAttr := range expectedEvent.Attributes {
				// any expected attributes that are not contained in the actual events will cause this event
				// not to match
				attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
			}

			if attributeMatch {
				foundEvents[i] = true
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

// containsAttribute returns true if the given key/value pair is contained in the given attributes.
// NOTE: this ignores the indexed field, which can be set or unset depending on how the events are retrieved.
func containsAttribute(attrs []abci.EventAttribute, key, value string) bool {
	attr, found := attributeByKey(attrs, key)
	return found && attr.Value == value
}

// attributeByKey returns the event attribute's value keyed by the given key and a boolean indicating its presence in the given attributes.
func attributeByKey(attributes []abci.EventAttribute, key string) (abci.EventAttribute, bool) {
	for _, attr := range attributes {
		if attr.Key == key {
			return attr, true
		}
	}
	return abci.EventAttribute{}, false
}
