// Package constants holds identifiers shared across layers.
package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Event publisher providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
