package main

import (
	"log/slog"
	"sync"

	"github.com/JatinVermaJv/sheetSync-dashboard/contracts"
)

const SubscriberBufferSize = 16

// ChangeNotifier fans mutation events out to the viewers currently joined
// to a spreadsheet id. Delivery is best-effort: a viewer whose buffer is
// full at publish time loses the event and must re-fetch full state.
type ChangeNotifier struct {
	mutex   sync.RWMutex
	viewers map[string]map[string]chan contracts.ChangeEvent
}

func NewChangeNotifier() *ChangeNotifier {
	return &ChangeNotifier{
		viewers: map[string]map[string]chan contracts.ChangeEvent{},
	}
}

func (n *ChangeNotifier) Join(connectionId string, spreadsheetId string) <-chan contracts.ChangeEvent {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	if _, ok := n.viewers[spreadsheetId]; !ok {
		n.viewers[spreadsheetId] = map[string]chan contracts.ChangeEvent{}
	}

	if existing, ok := n.viewers[spreadsheetId][connectionId]; ok {
		return existing
	}

	subscription := make(chan contracts.ChangeEvent, SubscriberBufferSize)
	n.viewers[spreadsheetId][connectionId] = subscription

	return subscription
}

func (n *ChangeNotifier) Leave(connectionId string, spreadsheetId string) {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	subscriptions, ok := n.viewers[spreadsheetId]
	if !ok {
		return
	}

	if subscription, ok := subscriptions[connectionId]; ok {
		close(subscription)
		delete(subscriptions, connectionId)
	}

	if len(subscriptions) == 0 {
		delete(n.viewers, spreadsheetId)
	}
}

// Publish delivers event to every viewer joined to spreadsheetId, at most
// once each, without blocking the publisher.
func (n *ChangeNotifier) Publish(spreadsheetId string, event contracts.ChangeEvent) {
	n.mutex.RLock()
	defer n.mutex.RUnlock()

	for connectionId, subscription := range n.viewers[spreadsheetId] {
		select {
		case subscription <- event:
		default:
			slog.Warn("change event dropped",
				"spreadsheetId", spreadsheetId,
				"connectionId", connectionId,
				"kind", event.Kind,
				"op", event.Op,
			)
		}
	}
}
