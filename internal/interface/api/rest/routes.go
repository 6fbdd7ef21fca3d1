package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteRegister = RouteAuth + "/register"
	RouteLogin    = RouteAuth + "/login"
	RouteMe       = RouteAuth + "/me"

	// trainers
	RouteTrainers         = RouteApiV1 + "/trainers"
	RouteFeaturedTrainers = RouteTrainers + "/featured"

	// image slots of the authenticated user
	RouteUsersMe      = RouteApiV1 + "/users/me"
	RouteProfileImage = RouteUsersMe + "/profile-image"
	RouteCoverImage   = RouteUsersMe + "/cover-image"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
