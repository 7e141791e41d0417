// Package constants contains values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Event bus providers
const (
	PubSubProviderMemory   = "memory"
	PubSubProviderLocal    = "local"
	PubSubProviderGoogle   = "google"
	PubSubProviderRabbitMQ = "rabbitmq"
)

// Badge claim policies for non-participant badges.
const (
	BadgePolicyOpen       = "open"
	BadgePolicyRegistered = "registered"
)

// Message attribute keys carried by every published domain event.
const (
	AttrRequestID = "request_id"
	AttrEventID   = "domain_event_id"
	AttrEventType = "domain_event_type"
)

// FirebaseBatchSize is the multicast limit of FCM.
const FirebaseBatchSize = 500
