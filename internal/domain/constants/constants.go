package constants

const (
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderGoogle = "google"
	PubSubProviderLocal  = "local"
)

const (
	// FanOutLockKey guards a single fan-out run across instances
	FanOutLockKey = "fan-out"

	// ForcedTitlePrefix marks notifications created by a manual trigger
	ForcedTitlePrefix = "[forced] "
)
