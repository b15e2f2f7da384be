package models

// STContext is the context key type for the spend tracker.
type STContext string

const (
	// ContextURL is the key for the base URL the API is reachable at.
	ContextURL STContext = "spend-tracker-url"

	// ContextUser is the key for the authenticated user of the request.
	ContextUser STContext = "spend-tracker-user"
)
