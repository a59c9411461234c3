package cmi5

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/jsalter/cmi5quest/internal/store"
)

// Bridge delivers statements to the LRS off the UI goroutine. Enqueue
// order is delivery order; Close enqueues terminated after everything
// already queued, so terminated is always the session's last statement.
// Delivery failures are logged and never surface to gameplay.
type Bridge struct {
	session *Session
	client  *Client // nil in standalone mode
	log     store.StatementRepo

	ch      chan *Statement
	done    chan struct{}
	closeMu sync.Mutex
	closed  bool

	sendTimeout time.Duration
}

const bridgeQueueDepth = 64

// NewBridge starts a bridge for the session. client may be nil for
// standalone play; log may be nil to skip the local statement log.
func NewBridge(session *Session, client *Client, log store.StatementRepo) *Bridge {
	b := &Bridge{
		session:     session,
		client:      client,
		log:         log,
		ch:          make(chan *Statement, bridgeQueueDepth),
		done:        make(chan struct{}),
		sendTimeout: 10 * time.Second,
	}
	go b.run()
	return b
}

// Session exposes the statement session for building custom statements.
func (b *Bridge) Session() *Session { return b.session }

// LMSMode reports whether statements actually go to an LRS.
func (b *Bridge) LMSMode() bool { return b.client != nil }

// Enqueue queues a statement for delivery. It never blocks gameplay:
// when the queue is full the statement skips delivery and goes straight
// to the local log as undelivered. Statements enqueued after Close are
// dropped with a warning rather than panicking mid-shutdown.
func (b *Bridge) Enqueue(st *Statement) {
	if st == nil {
		return
	}
	b.closeMu.Lock()
	defer b.closeMu.Unlock()
	if b.closed {
		fmt.Fprintf(os.Stderr, "warning: statement %s dropped after session end\n", st.Verb.Name())
		return
	}
	select {
	case b.ch <- st:
	default:
		fmt.Fprintf(os.Stderr, "warning: statement queue full, %s statement kept locally only\n", st.Verb.Name())
		b.logStatement(st, false)
	}
}

// Close enqueues the terminated statement, waits for the queue to
// drain, and stops the worker. Safe to call once.
func (b *Bridge) Close() {
	b.closeMu.Lock()
	if b.closed {
		b.closeMu.Unlock()
		return
	}
	b.closed = true
	b.ch <- b.session.Terminated()
	close(b.ch)
	b.closeMu.Unlock()

	<-b.done
}

func (b *Bridge) run() {
	defer close(b.done)
	for st := range b.ch {
		b.deliver(st)
	}
}

func (b *Bridge) deliver(st *Statement) {
	delivered := false
	if b.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), b.sendTimeout)
		err := b.client.PostStatement(ctx, st)
		cancel()
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to send %s statement: %v\n", st.Verb.Name(), err)
		} else {
			delivered = true
		}
	}

	b.logStatement(st, delivered)
}

func (b *Bridge) logStatement(st *Statement, delivered bool) {
	if b.log == nil {
		return
	}
	body, err := json.Marshal(st)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to encode statement: %v\n", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rec := &store.StatementRecord{
		StatementID: st.ID,
		Verb:        st.Verb.Name(),
		Body:        body,
		Delivered:   delivered,
	}
	if err := b.log.Append(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log statement: %v\n", err)
	}
}
