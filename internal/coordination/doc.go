// Package coordination hosts the state workers share through Redis: the
// per-snapshot pending task set and the per-snapshot distributed lock.
package coordination
