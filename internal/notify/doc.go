// Package notify announces new snapshot versions to a user's devices.
//
// A [Notifier] resolves the user's active device tokens and hands a
// [models.PushPayload] to a [Pusher]. [HTTPPusher] posts to a push gateway;
// [LogPusher] only logs and is used when no gateway is configured.
package notify
