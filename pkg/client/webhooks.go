package client

import (
	"context"
	"net/http"
)

var (
	opHookSubscriptions = Operation{Name: "webhooks.subscriptions", Family: FamilyWebhooks, Method: http.MethodGet, Path: "subscriptions/{workspace_id}", Summary: "List webhook subscriptions"}
	opHookCreate        = Operation{Name: "webhooks.create_subscription", Family: FamilyWebhooks, Method: http.MethodPost, Path: "subscriptions/{workspace_id}", Summary: "Create a webhook subscription"}
	opHookUpdate        = Operation{Name: "webhooks.update_subscription", Family: FamilyWebhooks, Method: http.MethodPut, Path: "subscriptions/{workspace_id}/{subscription_id}", Summary: "Update a webhook subscription"}
	opHookDelete        = Operation{Name: "webhooks.delete_subscription", Family: FamilyWebhooks, Method: http.MethodDelete, Path: "subscriptions/{workspace_id}/{subscription_id}", Summary: "Delete a webhook subscription"}
	opHookPing          = Operation{Name: "webhooks.ping", Family: FamilyWebhooks, Method: http.MethodPost, Path: "ping/{workspace_id}/{subscription_id}", Summary: "Send a test event to a subscription"}
	opHookEvents        = Operation{Name: "webhooks.events", Family: FamilyWebhooks, Method: http.MethodGet, Path: "subscriptions/{workspace_id}/{subscription_id}/events", Summary: "List recent events of a subscription"}
	opHookValidate      = Operation{Name: "webhooks.validate", Family: FamilyWebhooks, Method: http.MethodGet, Path: "validate/{workspace_id}/{subscription_id}/{validation_code}", Summary: "Validate a subscription endpoint"}
)

var webhookOperations = []Operation{
	opHookSubscriptions, opHookCreate, opHookUpdate, opHookDelete,
	opHookPing, opHookEvents, opHookValidate,
}

// WebhooksAPI exposes webhooks/api/v1 for one workspace.
type WebhooksAPI struct {
	c  *Client
	id int64
}

// Webhooks returns the webhook facade for workspace id (0 selects the default).
func (c *Client) Webhooks(id int64) *WebhooksAPI {
	return &WebhooksAPI{c: c, id: c.scopedWorkspace(id)}
}

func (h *WebhooksAPI) call(ctx context.Context, op Operation, args Args) Result {
	return h.c.Call(ctx, op, args, WithWorkspace(h.id))
}

func subscriptionArgs(subscriptionID int64) Args {
	return Args{Path: map[string]any{"subscription_id": subscriptionID}}
}

// Subscriptions lists the workspace's webhook subscriptions.
func (h *WebhooksAPI) Subscriptions(ctx context.Context) Result {
	return h.call(ctx, opHookSubscriptions, Args{})
}

// CreateSubscription creates a webhook subscription.
func (h *WebhooksAPI) CreateSubscription(ctx context.Context, subscription any) Result {
	return h.call(ctx, opHookCreate, Args{Body: subscription})
}

// UpdateSubscription replaces a subscription.
func (h *WebhooksAPI) UpdateSubscription(ctx context.Context, subscriptionID int64, subscription any) Result {
	args := subscriptionArgs(subscriptionID)
	args.Body = subscription
	return h.call(ctx, opHookUpdate, args)
}

// DeleteSubscription removes a subscription.
func (h *WebhooksAPI) DeleteSubscription(ctx context.Context, subscriptionID int64) Result {
	return h.call(ctx, opHookDelete, subscriptionArgs(subscriptionID))
}

// Ping asks the service to deliver a ping event to the subscription's URL.
func (h *WebhooksAPI) Ping(ctx context.Context, subscriptionID int64) Result {
	return h.call(ctx, opHookPing, subscriptionArgs(subscriptionID))
}

// Events lists the events a subscription can filter on.
func (h *WebhooksAPI) Events(ctx context.Context, subscriptionID int64) Result {
	return h.call(ctx, opHookEvents, subscriptionArgs(subscriptionID))
}

// Validate confirms a subscription with the code sent to its URL.
func (h *WebhooksAPI) Validate(ctx context.Context, subscriptionID int64, validationCode string) Result {
	args := subscriptionArgs(subscriptionID)
	args.Path["validation_code"] = validationCode
	return h.call(ctx, opHookValidate, args)
}
