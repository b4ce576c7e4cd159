package routes

const (
	// Health
	Health = "/health"

	// Auth endpoints
	AuthRegister = "/api/v1/auth/register"
	AuthLogin    = "/api/v1/auth/login"
	AuthLogout   = "/api/v1/auth/logout"
	Me           = "/api/v1/me"

	// Login page the session guard sends unauthenticated browsers to.
	LoginPage = "/login"

	// Strata roll
	Owners    = "/api/v1/owners"
	OwnerByID = "/api/v1/owners/{id}"

	// Maintenance
	MaintenanceRequests      = "/api/v1/maintenance-requests"
	MaintenanceRequestByID   = "/api/v1/maintenance-requests/{id}"
	MaintenanceRequestStatus = "/api/v1/maintenance-requests/{id}/status"

	// Documents
	Documents    = "/api/v1/documents"
	DocumentByID = "/api/v1/documents/{id}"

	// Finances
	Levies         = "/api/v1/levies"
	LevyByID       = "/api/v1/levies/{id}"
	BudgetItems    = "/api/v1/budget-items"
	BudgetItemByID = "/api/v1/budget-items/{id}"
	FinanceSummary = "/api/v1/finances/summary"
)
