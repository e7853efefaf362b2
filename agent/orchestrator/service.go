// Package orchestrator drives one conversational turn: validate the
// utterance, run the reasoning strategy (remote service when online, local
// matcher otherwise), and seal the reply envelope with authoritative cart
// totals. The turn pipeline is a compiled eino graph; cart access for the
// whole turn runs inside the session store's critical section.
package orchestrator

import (
	"context"
	"errors"
	"strings"

	"github.com/cloudwego/eino/compose"

	cartx "github.com/ordervoice/kiosk-agent/agent/cart"
	contractx "github.com/ordervoice/kiosk-agent/agent/contract"
	intentx "github.com/ordervoice/kiosk-agent/agent/intent"
	toolx "github.com/ordervoice/kiosk-agent/agent/tool"
)

var ErrInvalidMessage = contractx.ErrInvalidMessage

// Mode selects the turn strategy. Online still degrades to the matcher when
// the reasoner errors; offline never touches the reasoner at all.
type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

const defaultSessionID = "demo"

type Config struct {
	Mode    Mode
	TaxRate float64
}

type Orchestrator struct {
	store    cartx.Store
	exec     *toolx.Executor
	matcher  *intentx.Matcher
	reasoner contractx.Reasoner

	mode    Mode
	taxRate float64

	graphRunner compose.Runnable[turnInput, TurnResponse]
}

// New wires the turn pipeline. reasoner may be nil; the engine then runs
// offline regardless of cfg.Mode.
func New(store cartx.Store, exec *toolx.Executor, matcher *intentx.Matcher, reasoner contractx.Reasoner, cfg Config) (*Orchestrator, error) {
	if store == nil {
		return nil, errors.New("cart store is required")
	}
	if exec == nil {
		return nil, errors.New("tool executor is required")
	}
	if matcher == nil {
		return nil, errors.New("intent matcher is required")
	}

	mode := cfg.Mode
	if mode != ModeOffline && mode != ModeOnline {
		mode = ModeOnline
	}
	if reasoner == nil {
		mode = ModeOffline
	}

	taxRate := cfg.TaxRate
	if taxRate <= 0 {
		taxRate = cartx.DefaultTaxRate
	}

	o := &Orchestrator{
		store:    store,
		exec:     exec,
		matcher:  matcher,
		reasoner: reasoner,
		mode:     mode,
		taxRate:  taxRate,
	}

	graphRunner, err := o.compileHandleTurnGraph(context.Background())
	if err != nil {
		return nil, err
	}
	o.graphRunner = graphRunner

	return o, nil
}

// Mode reports the effective strategy after construction-time downgrades.
func (o *Orchestrator) Mode() Mode {
	return o.mode
}

// HandleTurn processes one utterance against the session's cart. The graph
// runs while the cart lock is held, so tool mutations and the final totals
// are atomic per session.
func (o *Orchestrator) HandleTurn(ctx context.Context, req TurnRequest) (TurnResponse, error) {
	if strings.TrimSpace(req.SessionID) == "" {
		req.SessionID = defaultSessionID
	}

	var out TurnResponse
	err := o.store.WithCart(ctx, req.SessionID, func(c *cartx.Cart) error {
		var invokeErr error
		out, invokeErr = o.graphRunner.Invoke(ctx, turnInput{Request: req, Cart: c})
		return invokeErr
	})
	if err != nil {
		return TurnResponse{}, err
	}
	return out, nil
}
