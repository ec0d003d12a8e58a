// Package constants holds identifiers shared between config, infra and usecases.
package constants

// Realtime store providers
const (
	StoreProviderFirebase = "firebase"
	StoreProviderMemory   = "memory"
)

// Auth providers
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// Media providers
const (
	MediaProviderBlob  = "blob"
	MediaProviderMinio = "minio"
)

// PubSub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Product event types
const (
	ProductEventCreated = "product.created"
	ProductEventUpdated = "product.updated"
	ProductEventDeleted = "product.deleted"
)

// Token types
const (
	TokenTypeSession = "session"
	TokenTypeRefresh = "refresh"
	TokenTypeReset   = "reset"
)

// Store paths
const (
	ProductsPath = "products"
	UsersPath    = "users"
)

// Deployment environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)
