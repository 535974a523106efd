// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the bundle lifecycle: load the dependency
// table, resolve and order the requested modules, then assemble them,
// decoupled from any specific entrypoint like a CLI.
package app
