package nav

// Package nav derives the visible navigation set for the current session.
// The filter is a UX convenience only; the server remains the authority on
// every request it receives.

import (
	"github.com/hajzi/admin-console/internal/domain/auth"
)

// Route paths for the console screens.
const (
	PathDashboard     = "/"
	PathLogin         = "/login"
	PathUsers         = "/users"
	PathPhotographers = "/photographers"
	PathVerifications = "/verifications"
	PathBookings      = "/bookings"
	PathAnalytics     = "/analytics"
	PathReviews       = "/reviews"
	PathNotifications = "/notifications"
	PathSubscriptions = "/subscriptions"
	PathReports       = "/reports"
	PathSystemAdmin   = "/system-admin"
	PathProfile       = "/profile"
)

// Item is one navigation entry. Ordering in a slice of Items is meaningful
// and preserved by the filter.
type Item struct {
	Path  string
	Label string
}

// DefaultItems returns the full console menu in display order.
func DefaultItems() []Item {
	return []Item{
		{Path: PathDashboard, Label: "Dashboard"},
		{Path: PathUsers, Label: "Users"},
		{Path: PathPhotographers, Label: "Photographers"},
		{Path: PathVerifications, Label: "Verification Requests"},
		{Path: PathBookings, Label: "Bookings"},
		{Path: PathAnalytics, Label: "Analytics"},
		{Path: PathReviews, Label: "Reviews"},
		{Path: PathNotifications, Label: "Notifications"},
		{Path: PathSubscriptions, Label: "Subscriptions"},
		{Path: PathReports, Label: "Reports"},
		{Path: PathSystemAdmin, Label: "System Admin"},
	}
}

// permissionByPath maps a navigation path to the permission key required to
// see it. Paths absent from the table are visible to superadmin only.
var permissionByPath = map[string]string{
	PathUsers:         "users",
	PathPhotographers: "photographers",
	PathBookings:      "bookings",
	PathAnalytics:     "analytics",
	PathReviews:       "reviews",
	PathNotifications: "notifications",
	PathSubscriptions: "subscriptions",
	PathReports:       "reports",
	PathSystemAdmin:   "system_admin",
}

// PermissionFor returns the permission key guarding a path, if any.
func PermissionFor(path string) (string, bool) {
	key, ok := permissionByPath[path]
	return key, ok
}

// VisibleItems filters items down to those the session may see, preserving
// input order. No session means no menu. Superadmin sees everything. For
// everyone else the dashboard root is always included, the system
// administration screen is always excluded (route-level enforcement lives in
// the guard), and the rest require the mapped permission to be granted.
func VisibleItems(items []Item, sess *auth.Session) []Item {
	if sess == nil {
		return nil
	}
	if sess.Role == auth.RoleSuperadmin {
		out := make([]Item, len(items))
		copy(out, items)
		return out
	}

	out := make([]Item, 0, len(items))
	for _, item := range items {
		switch item.Path {
		case PathDashboard:
			out = append(out, item)
		case PathSystemAdmin:
			// hidden from the menu for every non-superadmin role
		default:
			key, ok := permissionByPath[item.Path]
			if ok && sess.Permissions[key] {
				out = append(out, item)
			}
		}
	}
	return out
}
