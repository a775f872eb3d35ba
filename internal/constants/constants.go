package constants

// Session / context keys
const (
	SessionCookieName = "tracker_session"
	ContextKeyUserID  = "user_id"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page routes guarded by the session middleware.
const (
	RouteAuth       = "/"
	RouteDashboard  = "/dashboard"
	RouteNewProject = "/new-project"
)
