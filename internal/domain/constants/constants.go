// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors.
const (
	// PubSubProviderLocal routes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
