package models

const (
	DimensionChannel = "channel"
	DimensionMonth   = "month"
	DimensionWeek    = "week"
	DimensionArea    = "area"
	DimensionCuisine = "cuisine"

	RoleAdmin  = "admin"
	RoleViewer = "viewer"

	EventTypeQuery       = "query"
	EventTypeExport      = "export"
	EventTypeAdminAction = "admin_action"
)

// Dimensions a grouping request may name; anything else is rejected at the
// API boundary before it reaches the engine.
var ValidDimensions = map[string]bool{
	DimensionChannel: true,
	DimensionMonth:   true,
	DimensionWeek:    true,
	DimensionArea:    true,
	DimensionCuisine: true,
}
