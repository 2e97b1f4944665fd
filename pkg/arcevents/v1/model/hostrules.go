package model

import (
	"context"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/eventtypes"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
)

// UpdateHostRule creates or updates rule.
func UpdateHostRule(ctx context.Context, target events.Target, rule *types.HostRule) (events.ChangeRecord[types.HostRule], error) {
	return update(ctx, target, eventtypes.HostRulesUpdate, rule)
}

// UpdateHostRuleBulk creates or updates every rule in rules.
func UpdateHostRuleBulk(ctx context.Context, target events.Target, rules []*types.HostRule) ([]events.ChangeRecord[types.HostRule], error) {
	return updateBulk(ctx, target, eventtypes.HostRulesUpdateBulk, rules)
}

// DeleteHostRule removes the rule id.
func DeleteHostRule(ctx context.Context, target events.Target, id, rev string) (events.DeletedRecord, error) {
	return remove(ctx, target, eventtypes.HostRulesDelete, id, rev)
}

// ListHostRules returns one page of host rules.
func ListHostRules(ctx context.Context, target events.Target, opts events.ListOptions) (events.ListResult[types.HostRule], error) {
	return list[types.HostRule](ctx, target, eventtypes.HostRulesList, opts)
}

// ClearHostRules removes every host rule.
func ClearHostRules(ctx context.Context, target events.Target) error {
	return clearStore(ctx, target, eventtypes.HostRulesClear)
}

// NotifyHostRuleUpdated announces a stored rule.
func NotifyHostRuleUpdated(ctx context.Context, target events.Target, record *events.ChangeRecord[types.HostRule]) error {
	return notifyChanged(ctx, target, eventtypes.HostRulesStateUpdate, record)
}

// NotifyHostRuleDeleted announces a removed rule.
func NotifyHostRuleDeleted(ctx context.Context, target events.Target, id, rev string) error {
	return notifyDeleted(ctx, target, eventtypes.HostRulesStateDelete, id, rev)
}
