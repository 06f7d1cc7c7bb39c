// Package workflow holds the status transition tables of the moderated records
// and the engine applying them.
package workflow

import (
	"context"
	"fmt"

	"github.com/kat-co/vala"
	"github.com/pkg/errors"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
)

type Kind string

const (
	KindComplaint Kind = "complaint"
	KindBooking   Kind = "booking"
	KindRequest   Kind = "request"
)

// Statuses
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusResolved   = "resolved"
	StatusApproved   = "approved"
	StatusRejected   = "rejected"
)

const assigneeRequiredText = "an assignee is required"

// Extra carries the optional payload of a transition.
type Extra struct {
	Assignee string `json:"assignee"`
	Notes    string `json:"notes"`
}

type Edge struct {
	From, To string
}

// Table lists the legal transitions of one Kind.
type Table struct {
	Kind            Kind
	States          []string
	Edges           []Edge
	RequireAssignee []Edge
}

var (
	ComplaintTable = Table{
		Kind:   KindComplaint,
		States: []string{StatusPending, StatusInProgress, StatusResolved, StatusRejected},
		Edges: []Edge{
			{StatusPending, StatusInProgress},
			{StatusPending, StatusRejected},
			{StatusInProgress, StatusResolved},
		},
		RequireAssignee: []Edge{{StatusPending, StatusInProgress}},
	}

	BookingTable = Table{
		Kind:   KindBooking,
		States: []string{StatusPending, StatusApproved, StatusRejected},
		Edges: []Edge{
			{StatusPending, StatusApproved},
			{StatusPending, StatusRejected},
		},
	}

	RequestTable = Table{
		Kind:   KindRequest,
		States: []string{StatusPending, StatusApproved, StatusRejected},
		Edges: []Edge{
			{StatusPending, StatusApproved},
			{StatusPending, StatusRejected},
		},
	}
)

func (t Table) hasState(s string) bool {
	for _, state := range t.States {
		if state == s {
			return true
		}
	}
	return false
}

func (t Table) hasEdge(edges []Edge, from, to string) bool {
	for _, e := range edges {
		if e.From == from && e.To == to {
			return true
		}
	}
	return false
}

// Terminal reports whether no transition leaves state.
func (t Table) Terminal(state string) bool {
	for _, e := range t.Edges {
		if e.From == state {
			return false
		}
	}
	return t.hasState(state)
}

// Check validates moving from `from` to `to`.
// It returns noop=true when the record already is in the target state: retries are safe.
func (t Table) Check(from, to string, extra Extra) (noop bool, err error) {
	if !t.hasState(to) {
		return false, core.NewInvalidTransitionError(string(t.Kind), from, to)
	}
	if from == to {
		return true, nil
	}
	if !t.hasEdge(t.Edges, from, to) {
		return false, core.NewInvalidTransitionError(string(t.Kind), from, to)
	}
	if t.hasEdge(t.RequireAssignee, from, to) && core.CleanString(extra.Assignee) == "" {
		return false, core.NewValidationError(nil, core.FieldError{Field: "assignee", Error: assigneeRequiredText})
	}
	return false, nil
}

// Applier moves one record of its Kind to a target status.
// Implementations must run Check and the status stamps atomically with the store update.
type Applier interface {
	Transition(ctx context.Context, id, target string, extra Extra) (record interface{}, from string, err error)
}

// ApplierFunc adapts a plain function to an Applier.
type ApplierFunc func(ctx context.Context, id, target string, extra Extra) (interface{}, string, error)

func (f ApplierFunc) Transition(ctx context.Context, id, target string, extra Extra) (interface{}, string, error) {
	return f(ctx, id, target, extra)
}

type Engine struct {
	appliers map[Kind]Applier
	logger   core.Logger
	metrics  core.Metrics
}

func NewEngine(logger core.Logger, metrics core.Metrics) *Engine {
	vala.BeginValidation().Validate(
		vala.IsNotNil(logger, "logger"),
		vala.IsNotNil(metrics, "metrics"),
	).CheckAndPanic()

	return &Engine{
		appliers: make(map[Kind]Applier, 3),
		logger:   logger,
		metrics:  metrics,
	}
}

func (e *Engine) Register(kind Kind, a Applier) {
	e.appliers[kind] = a
}

// ApplyTransition moves record `id` of `kind` to `target` and returns the updated record.
func (e *Engine) ApplyTransition(ctx context.Context, kind Kind, id, target string, extra Extra) (interface{}, error) {
	a, ok := e.appliers[kind]
	if !ok {
		return nil, core.NewValidationError(fmt.Errorf("unknown record kind %q", kind))
	}
	target = core.CleanString(target, true /* lower */)

	rec, from, err := a.Transition(ctx, id, target, extra)
	if err != nil {
		return nil, errors.Wrapf(err, "applying %s transition", kind)
	}
	if from != target {
		e.metrics.TransitionApplied(string(kind), from, target)
		e.logger.Info(fmt.Sprintf("%s %s: %s -> %s", kind, id, from, target))
	}
	return rec, nil
}
