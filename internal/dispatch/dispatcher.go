package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/oklog/ulid/v2"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/wagiedev/proofessor-mcp/internal/catalog"
	proferrors "github.com/wagiedev/proofessor-mcp/internal/errors"
	"github.com/wagiedev/proofessor-mcp/internal/tools"
)

// Handler renders the response text of one tool from its call arguments.
type Handler func(ctx context.Context, args map[string]any) (string, error)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the logger. If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.log = logger
		}
	}
}

// WithLenientArguments disables required-field validation. Missing required
// fields then render as empty strings.
func WithLenientArguments(lenient bool) Option {
	return func(d *Dispatcher) {
		d.lenient = lenient
	}
}

// WithHandler replaces the handler of a catalog tool. New fails if name is
// not in the catalog.
func WithHandler(name string, handler Handler) Option {
	return func(d *Dispatcher) {
		d.overrides[name] = handler
	}
}

// Dispatcher routes tool calls by name. It holds only immutable state after
// New returns and is safe for concurrent use.
type Dispatcher struct {
	log        *slog.Logger
	catalog    *catalog.Catalog
	handlers   map[string]Handler
	overrides  map[string]Handler
	validators map[string]*jsonschema.Schema
	lenient    bool
}

// New creates a Dispatcher for the tools of cat. Every catalog tool must have
// a handler and every handler must name a catalog tool; the Proofessor tools
// are registered by default.
func New(cat *catalog.Catalog, opts ...Option) (*Dispatcher, error) {
	d := &Dispatcher{
		log:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		catalog:    cat,
		handlers:   make(map[string]Handler, cat.Len()),
		overrides:  make(map[string]Handler),
		validators: make(map[string]*jsonschema.Schema, cat.Len()),
	}

	for _, opt := range opts {
		opt(d)
	}

	d.log = d.log.With("component", "dispatch")

	for name := range d.overrides {
		if _, ok := cat.Lookup(name); !ok {
			return nil, fmt.Errorf("handler for unknown tool %q", name)
		}
	}

	defaults := defaultHandlers()

	for _, desc := range cat.Tools() {
		handler, ok := d.overrides[desc.Name]
		if !ok {
			handler, ok = defaults[desc.Name]
		}

		if !ok {
			return nil, fmt.Errorf("no handler for tool %q", desc.Name)
		}

		d.handlers[desc.Name] = handler

		schema, err := compileArgumentSchema(desc)
		if err != nil {
			return nil, err
		}

		d.validators[desc.Name] = schema
	}

	return d, nil
}

// ListTools returns the catalog descriptors in declaration order.
func (d *Dispatcher) ListTools() []catalog.Descriptor {
	return d.catalog.Tools()
}

// Catalog returns the catalog the dispatcher serves.
func (d *Dispatcher) Catalog() *catalog.Catalog {
	return d.catalog
}

// Call executes the named tool. It always returns a result with exactly one
// text block; failures are reported through IsError.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) *mcp.CallToolResult {
	result, _ := d.Execute(ctx, name, args)

	return result
}

// Execute is Call that also returns the failure behind an error result. The
// error is one of the typed errors of the errors package and is nil exactly
// when result.IsError is false.
func (d *Dispatcher) Execute(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult, err error) {
	callID := ulid.Make().String()
	start := time.Now()

	d.log.Debug("Dispatching tool call", "call_id", callID, "tool", name)

	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Tool handler panicked", "call_id", callID, "tool", name, "panic", r)
			err = proferrors.NewHandlerPanic(name, r)
			result = ErrorResult(err)
		}
	}()

	text, err := d.invoke(ctx, name, args)
	if err != nil {
		d.log.Warn("Tool call failed", "call_id", callID, "tool", name, "error", err)

		return ErrorResult(err), err
	}

	d.log.Debug("Tool call completed", "call_id", callID, "tool", name, "elapsed", time.Since(start))

	return TextResult(text), nil
}

func (d *Dispatcher) invoke(ctx context.Context, name string, args map[string]any) (string, error) {
	if _, ok := d.catalog.Lookup(name); !ok {
		return "", &proferrors.UnknownToolError{Name: name}
	}

	if !d.lenient {
		if err := validateArguments(d.validators[name], args); err != nil {
			return "", invalidArguments(name, err)
		}
	}

	text, err := d.handlers[name](ctx, args)
	if err != nil {
		return "", &proferrors.HandlerFailureError{Tool: name, Err: err}
	}

	return text, nil
}

// reject logs and converts an error detected before dispatch.
func (d *Dispatcher) reject(name string, err error) *mcp.CallToolResult {
	d.log.Warn("Tool call rejected", "tool", name, "error", err)

	return ErrorResult(err)
}

func invalidArguments(name string, err error) error {
	return &proferrors.InvalidArgumentsError{Tool: name, Err: err}
}

func defaultHandlers() map[string]Handler {
	return map[string]Handler{
		catalog.AskProofessor:       render(tools.DecodeAsk, tools.FormatAsk),
		catalog.ExplainCode:         render(tools.DecodeExplain, tools.FormatExplain),
		catalog.AnalyzeArchitecture: render(tools.DecodeArchitecture, tools.FormatArchitecture),
		catalog.DebugHelp:           render(tools.DecodeDebug, tools.FormatDebug),
		catalog.BestPractices:       render(tools.DecodeBestPractices, tools.FormatBestPractices),
	}
}

// render adapts a decode/format pair to a Handler.
func render[R any](decode func(map[string]any) R, format func(R) string) Handler {
	return func(_ context.Context, args map[string]any) (string, error) {
		return format(decode(args)), nil
	}
}
