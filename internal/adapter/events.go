// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/logger"
	"github.com/MKhiriev/go-property-dex/models"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gorilla/websocket"
)

const defaultEventBuffer = 16

// Notification names published by the wallet provider.
const (
	eventAccountsChanged = "accountsChanged"
	eventChainChanged    = "chainChanged"
	eventDisconnect      = "disconnect"
)

// eventMessage is one provider notification as sent over the WebSocket.
type eventMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// eventStream reads provider notifications from a WebSocket connection and
// delivers them on a bounded channel.
type eventStream struct {
	conn   *websocket.Conn
	events chan models.ProviderEvent
	logger *logger.Logger
}

func dialEventStream(ctx context.Context, rawURL string, buffer int, logger *logger.Logger) (*eventStream, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial wallet events: %w: %w", ErrProviderUnavailable, err)
	}

	if buffer <= 0 {
		buffer = defaultEventBuffer
	}

	s := &eventStream{
		conn:   conn,
		events: make(chan models.ProviderEvent, buffer),
		logger: logger,
	}

	go s.closeOnDone(ctx)
	go s.readLoop(ctx)

	return s, nil
}

// Events returns the notification channel. It is closed when the stream ends.
func (s *eventStream) Events() <-chan models.ProviderEvent {
	return s.events
}

func (s *eventStream) closeOnDone(ctx context.Context) {
	<-ctx.Done()
	_ = s.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), noDeadline)
	_ = s.conn.Close()
}

func (s *eventStream) readLoop(ctx context.Context) {
	defer close(s.events)

	for {
		var msg eventMessage
		if err := s.conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn().Err(err).Str("func", "eventStream.readLoop").Msg("wallet event stream ended")
			}
			_ = s.conn.Close()
			return
		}

		event, err := decodeEvent(msg)
		if err != nil {
			s.logger.Warn().Err(err).Str("func", "eventStream.readLoop").Str("event", msg.Event).Msg("skipping wallet event")
			continue
		}

		select {
		case s.events <- event:
		case <-ctx.Done():
			return
		}
	}
}

func decodeEvent(msg eventMessage) (models.ProviderEvent, error) {
	switch msg.Event {
	case eventAccountsChanged:
		var accounts []string
		if len(msg.Data) > 0 && string(msg.Data) != "null" {
			if err := json.Unmarshal(msg.Data, &accounts); err != nil {
				return models.ProviderEvent{}, fmt.Errorf("%w: accounts: %w", ErrInvalidResponse, err)
			}
		}
		return models.ProviderEvent{Kind: models.AccountsChanged, Accounts: accounts}, nil

	case eventChainChanged:
		chainID, err := decodeChainID(msg.Data)
		if err != nil {
			return models.ProviderEvent{}, err
		}
		return models.ProviderEvent{Kind: models.ChainChanged, ChainID: chainID}, nil

	case eventDisconnect:
		return models.ProviderEvent{Kind: models.ProviderDisconnected}, nil

	default:
		return models.ProviderEvent{}, fmt.Errorf("%w: unknown event %q", ErrInvalidResponse, msg.Event)
	}
}

// decodeChainID accepts a hex quantity ("0x2105"), a decimal string or a
// JSON number.
func decodeChainID(data json.RawMessage) (uint64, error) {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			chainID, err := hexutil.DecodeUint64(strings.ToLower(s))
			if err != nil {
				return 0, fmt.Errorf("%w: chain id: %w", ErrInvalidResponse, err)
			}
			return chainID, nil
		}
		chainID, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: chain id: %w", ErrInvalidResponse, err)
		}
		return chainID, nil
	}

	var n uint64
	if err := json.Unmarshal(data, &n); err != nil {
		return 0, fmt.Errorf("%w: chain id: %w", ErrInvalidResponse, err)
	}
	return n, nil
}

var noDeadline = time.Time{}
