package client

import (
	"context"
	"log"

	"github.com/coder/websocket"
)

// Subscription is a websocket connection to the change feed. The
// callback fires once per received event; payload contents are ignored
// because subscribers reload the full list regardless.
type Subscription struct {
	conn   *websocket.Conn
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSubscription dials the feed and starts the read loop.
func NewSubscription(ctx context.Context, wsURL string, onEvent func(context.Context)) (*Subscription, error) {
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	sub := &Subscription{
		conn:   conn,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go sub.readLoop(runCtx, onEvent)
	return sub, nil
}

func (s *Subscription) readLoop(ctx context.Context, onEvent func(context.Context)) {
	defer close(s.done)
	for {
		_, _, err := s.conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil {
				log.Printf("[Subscription] Read failed, feed closed: %v", err)
			}
			return
		}
		onEvent(ctx)
	}
}

// Close stops the read loop and closes the connection.
func (s *Subscription) Close() error {
	s.cancel()
	err := s.conn.Close(websocket.StatusNormalClosure, "")
	<-s.done
	return err
}
