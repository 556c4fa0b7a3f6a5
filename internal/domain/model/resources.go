package model

// Package model contains pure data types for the admin console resources.
// Field tags mirror the REST backend's JSON payloads.

import "time"

// Pagination is the shared paging envelope returned by every list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// User is a marketplace account (client, photographer, or staff).
type User struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	IsBlocked bool      `json:"isBlocked"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserInput carries the writable fields for creating or updating a user.
// Password is only honored on create.
type UserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

// Photographer is a provider profile layered over a user account.
type Photographer struct {
	ID         string    `json:"_id"`
	UserID     string    `json:"user"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	City       string    `json:"city,omitempty"`
	Status     string    `json:"status"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Booking is a reservation between a client and a photographer.
type Booking struct {
	ID           string    `json:"_id"`
	ClientName   string    `json:"clientName"`
	Photographer string    `json:"photographer"`
	Status       string    `json:"status"`
	Date         time.Time `json:"date"`
	TotalPrice   float64   `json:"totalPrice"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Review is a client rating of a completed booking.
type Review struct {
	ID        string    `json:"_id"`
	Author    string    `json:"author"`
	Target    string    `json:"target"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Report is a user-filed complaint awaiting moderation.
type Report struct {
	ID        string    `json:"_id"`
	Reporter  string    `json:"reporter"`
	Reported  string    `json:"reported"`
	Reason    string    `json:"reason"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminAccount is a console staff account with scoped permissions.
type AdminAccount struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// AdminAccountInput carries the writable fields for staff accounts.
type AdminAccountInput struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Password    string          `json:"password,omitempty"`
	Role        string          `json:"role"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

// DashboardStats is the headline snapshot rendered on the dashboard root.
type DashboardStats struct {
	TotalUsers           int     `json:"totalUsers"`
	TotalPhotographers   int     `json:"totalPhotographers"`
	TotalBookings        int     `json:"totalBookings"`
	TotalRevenue         float64 `json:"totalRevenue"`
	PendingVerifications int     `json:"pendingVerifications"`
}

// SubscriptionStats summarizes provider subscription revenue.
type SubscriptionStats struct {
	ActiveSubscriptions int     `json:"activeSubscriptions"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`
	ChurnedThisMonth    int     `json:"churnedThisMonth"`
}

// Overview bundles the dashboard and subscription snapshots fetched together.
type Overview struct {
	Dashboard     DashboardStats
	Subscriptions SubscriptionStats
}

// BroadcastInput is the payload for a platform-wide push notification.
type BroadcastInput struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Target string `json:"target"`
}
