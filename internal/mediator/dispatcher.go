// Package mediator routes typed commands and queries to their single
// registered handler. Registration happens once at startup; dispatch is
// a pure routing step with no business logic, no retries and no queuing.
package mediator

import (
	"context"
	"fmt"
)

// Kind discriminates commands (mutations answered with a Result
// envelope) from queries (reads answered with the domain value).
type Kind int

const (
	KindQuery Kind = iota
	KindCommand
)

func (k Kind) String() string {
	switch k {
	case KindQuery:
		return "query"
	case KindCommand:
		return "command"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Request is implemented by every command and query routed through a
// Dispatcher. RequestName is the static type tag used for handler
// lookup; two request types must not share a name.
type Request interface {
	RequestName() string
	RequestKind() Kind
}

// HandlerFunc handles a single request type. Handlers receive the
// request context as a cooperative cancellation signal and must abandon
// work without partial persistence once it fires. The returned outcome
// is propagated to the caller unchanged; so is any error.
type HandlerFunc func(ctx context.Context, req Request) (any, error)

// Dispatcher holds the name→handler table. It is populated during
// startup and read-only afterwards.
type Dispatcher struct {
	handlers map[string]HandlerFunc
}

func New() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]HandlerFunc)}
}

// Register wires the handler for the named request type. Registering a
// second handler for the same name is a configuration error.
func (d *Dispatcher) Register(name string, h HandlerFunc) error {
	if name == "" {
		return fmt.Errorf("mediator: empty request name")
	}
	if h == nil {
		return fmt.Errorf("mediator: nil handler for %q", name)
	}
	if _, dup := d.handlers[name]; dup {
		return fmt.Errorf("mediator: handler already registered for %q", name)
	}
	d.handlers[name] = h
	return nil
}

// MustRegister is Register for startup wiring, where a duplicate
// registration should abort the process.
func (d *Dispatcher) MustRegister(name string, h HandlerFunc) {
	if err := d.Register(name, h); err != nil {
		panic(err)
	}
}

// Send routes req to its handler and returns the handler's outcome or
// fault unchanged. Invocation is synchronous and one-shot.
func (d *Dispatcher) Send(ctx context.Context, req Request) (any, error) {
	h, ok := d.handlers[req.RequestName()]
	if !ok {
		return nil, fmt.Errorf("mediator: no handler registered for %q", req.RequestName())
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return h(ctx, req)
}
