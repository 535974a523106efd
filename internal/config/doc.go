// Package config defines the format-agnostic manifest model for the
// application, along with the Loader interface for reading manifests from
// various sources.
//
// A config.Model is turned into a depgraph.Graph by the app package.
// Concrete loaders, such as the HCL one, live in separate packages.
package config
