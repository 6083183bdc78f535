// Package cli provides the interactive HomeFinder command-line client.
//
// The REPL stands in for the mobile screen tree: each screen group
// (auth, renter home, owner home) exposes its own command set, and App
// implements navigator.Mounter so the route guard decides which set is
// active. Commands of the other groups are unreachable.
//
// Typical flow: load config, open storage, load the session and favorites
// stores, start the guard (which mounts the initial group), then App.Run
// until the user exits.
package cli
