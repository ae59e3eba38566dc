// Package constants holds identifiers shared across layers.
package constants

const (
	// EnvDevelop is the environment name used for local development
	EnvDevelop = "develop"

	// PubSubProviderLocal publishes presence events to a local HTTP endpoint
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes presence events to Google Pub/Sub
	PubSubProviderGoogle = "google"

	// RemoteProviderFirestore backs the remote document store with Firestore
	RemoteProviderFirestore = "firestore"
	// RemoteProviderMemory backs the remote document store with an in-process map
	RemoteProviderMemory = "memory"

	// PresenceTopicPrefix prefixes the FCM topic watchers of a user subscribe to
	PresenceTopicPrefix = "presence_"
)
