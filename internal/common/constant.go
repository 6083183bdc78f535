// Package common contains shared constants and sentinel errors used across
// homefinder components.
package common

// Storage slot keys. Each store owns exactly one slot holding a serialized
// snapshot of its full state.
const (
	AuthStorageKey      = "auth-storage"
	FavoritesStorageKey = "favorites-storage"
)
