package services

import (
	"context"
	"sync/atomic"

	"wonderpay-server/src/monite"
	"wonderpay-server/src/notify"
)

// base carries what every resource service needs: the shared session
// manager, the notification side channel, and the loading flag.
type base struct {
	sessions *monite.SessionManager
	notifier notify.Notifier
	loading  atomic.Bool
}

// Loading reports whether a call is in flight. Concurrent operations on
// one service are not coordinated; the last write wins. The dashboard
// disables triggering controls while this is true, so this is a display
// flag, not a mutual-exclusion guarantee.
func (b *base) Loading() bool {
	return b.loading.Load()
}

// begin raises the loading flag and returns its guaranteed release.
func (b *base) begin() func() {
	b.loading.Store(true)
	return func() { b.loading.Store(false) }
}

func (b *base) reportSuccess(description string) {
	b.notifier.Success("Success", description)
}

func (b *base) reportError(description string) {
	b.notifier.Error("Error", description)
}

// requireSession is the fail-fast guard: no live session means no
// network call, one error notification, and a session-kind error.
func (b *base) requireSession(service string) error {
	if b.sessions.Active() {
		return nil
	}
	e := &Error{Kind: KindSession, Message: service + " not initialized", Err: ErrNoSession}
	b.reportError(e.Message)
	return e
}

// client resolves the live vendor client after the session guard passed.
func (b *base) client(ctx context.Context) (*monite.Client, error) {
	client, err := b.sessions.GetClient(ctx)
	if err != nil {
		e := &Error{Kind: KindSession, Message: "Session is no longer available", Err: err}
		b.reportError(e.Message)
		return nil, e
	}
	return client, nil
}
