// Package cache provides persistent stores for translations and user
// preferences: a durable SQLite store, a Redis store for shared-cache
// deployments, and an in-memory store for tests and cache-disabled runs.
package cache

import "github.com/ZaguanLabs/hantl"

// Store is the storage interface implemented by every backend in this
// package. This is an alias to the main package interface for convenience.
type Store = hantl.Store
