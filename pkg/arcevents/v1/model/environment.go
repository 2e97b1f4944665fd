package model

import (
	"context"

	"github.com/arc-labs/arcevents/internal/argutil"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// ReadEnvironment returns the environment id.
func ReadEnvironment(ctx context.Context, target events.Target, id, rev string) (*types.Environment, error) {
	return read[types.Environment](ctx, target, eventtypes.EnvironmentRead, id, rev)
}

// UpdateEnvironment creates or updates env.
func UpdateEnvironment(ctx context.Context, target events.Target, env *types.Environment) (events.ChangeRecord[types.Environment], error) {
	return update(ctx, target, eventtypes.EnvironmentUpdate, env)
}

// DeleteEnvironment removes the environment id and its variables.
func DeleteEnvironment(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.EnvironmentDelete, id, rev)
}

// ListEnvironments returns one page of environments.
func ListEnvironments(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.Environment], error) {
	return list[types.Environment](ctx, target, eventtypes.EnvironmentList, opts)
}

// EnvironmentCurrentEvent reads the selected environment.
type EnvironmentCurrentEvent struct {
	events.Base
	events.Request[*types.EnvironmentState]
}

// NewEnvironmentCurrentEvent takes no arguments.
func NewEnvironmentCurrentEvent() *EnvironmentCurrentEvent {
	return &EnvironmentCurrentEvent{Base: events.NewBase(eventtypes.EnvironmentCurrent)}
}

// CurrentEnvironment returns the selected environment and its variables.
func CurrentEnvironment(ctx context.Context, target events.Target) (*types.EnvironmentState, error) {
	return events.Call[*types.EnvironmentState](ctx, target, NewEnvironmentCurrentEvent())
}

// EnvironmentSelectEvent selects an environment. An empty id selects the
// default environment.
type EnvironmentSelectEvent struct {
	events.Base
	events.Request[events.Void]
	id string
}

// NewEnvironmentSelectEvent accepts an empty id.
func NewEnvironmentSelectEvent(id string) *EnvironmentSelectEvent {
	return &EnvironmentSelectEvent{Base: events.NewBase(eventtypes.EnvironmentSelect), id: id}
}

// ID returns the environment to select, empty for the default.
func (e *EnvironmentSelectEvent) ID() string { return e.id }

// Detail implements events.Detailer.
func (e *EnvironmentSelectEvent) Detail() interface{} {
	return map[string]interface{}{"id": e.id}
}

// SelectEnvironment makes id the current environment.
func SelectEnvironment(ctx context.Context, target events.Target, id string) error {
	_, err := events.Call[events.Void](ctx, target, NewEnvironmentSelectEvent(id))
	return err
}

// NotifyEnvironmentUpdated announces a stored environment.
func NotifyEnvironmentUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.Environment]) error {
	return notifyChanged(ctx, target, eventtypes.EnvironmentStateUpdate, record)
}

// NotifyEnvironmentDeleted announces a removed environment.
func NotifyEnvironmentDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.EnvironmentStateDelete, id, rev)
}

// EnvironmentStateSelectEvent announces the newly selected environment.
type EnvironmentStateSelectEvent = events.ValueEvent[types.EnvironmentState]

// NotifyEnvironmentSelected announces that state is now current.
func NotifyEnvironmentSelected(ctx context.Context, target events.Target, state *types.EnvironmentState) error {
	e, err := events.NewValueEvent(eventtypes.EnvironmentStateSelect, "state", state)
	if err != nil {
		return err
	}
	events.Notify(ctx, target, e)
	return nil
}

// UpdateVariable creates or updates v.
func UpdateVariable(ctx context.Context, target events.Target, v *types.Variable) (events.ChangeRecord[types.Variable], error) {
	return update(ctx, target, eventtypes.VariableUpdate, v)
}

// DeleteVariable removes the variable id.
func DeleteVariable(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.VariableDelete, id, rev)
}

// VariableListEvent lists the variables of one environment.
type VariableListEvent struct {
	events.Base
	events.Request[events.ListResult[types.Variable]]
	environment string
	opts        events.ListOptions
}

// NewVariableListEvent requires environment.
func NewVariableListEvent(environment string, opts events.ListOptions) (*VariableListEvent, error) {
	if err := argutil.String("environment", environment); err != nil {
		return nil, err
	}
	return &VariableListEvent{Base: events.NewBase(eventtypes.VariableList), environment: environment, opts: opts}, nil
}

func (e *VariableListEvent) Environment() string         { return e.environment }
func (e *VariableListEvent) Options() events.ListOptions { return e.opts }

// Detail implements events.Detailer.
func (e *VariableListEvent) Detail() interface{} {
	return map[string]interface{}{"environment": e.environment, "limit": e.opts.Limit, "nextPageToken": e.opts.NextPageToken}
}

// ListVariables returns one page of the variables of environment.
func ListVariables(ctx context.Context, target events.Target, environment string, opts events.ListOptions) (events.ListResult[types.Variable], error) {
	e, err := NewVariableListEvent(environment, opts)
	if err != nil {
		return events.ListResult[types.Variable]{}, err
	}
	return events.Call[events.ListResult[types.Variable]](ctx, target, e)
}

// VariableSetEvent sets a variable of the current environment, creating
// it when missing.
type VariableSetEvent struct {
	events.Base
	events.Request[events.Void]
	name  string
	value string
}

// NewVariableSetEvent requires name. An empty value is allowed.
func NewVariableSetEvent(name, value string) (*VariableSetEvent, error) {
	if err := argutil.String("name", name); err != nil {
		return nil, err
	}
	return &VariableSetEvent{Base: events.NewBase(eventtypes.VariableSet), name: name, value: value}, nil
}

func (e *VariableSetEvent) Name() string  { return e.name }
func (e *VariableSetEvent) Value() string { return e.value }

// Detail implements events.Detailer.
func (e *VariableSetEvent) Detail() interface{} {
	return map[string]interface{}{"name": e.name, "value": e.value}
}

// SetVariable sets name to value in the current environment.
func SetVariable(ctx context.Context, target events.Target, name, value string) error {
	e, err := NewVariableSetEvent(name, value)
	if err != nil {
		return err
	}
	_, err = events.Call[events.Void](ctx, target, e)
	return err
}

// NotifyVariableUpdated announces a stored variable.
func NotifyVariableUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.Variable]) error {
	return notifyChanged(ctx, target, eventtypes.VariableStateUpdate, record)
}

// NotifyVariableDeleted announces a removed variable.
func NotifyVariableDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.VariableStateDelete, id, rev)
}
