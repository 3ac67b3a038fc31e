// Package entity contains the core business objects of the project.
package entity

import "time"

// The reporting aggregates below are recomputed on every request; nothing is
// cached. "New" counters use a rolling 30-day window.

// StatsOverview is the admin dashboard headline block.
type StatsOverview struct {
	TotalSales    float64 // Sum of paid order totals.
	NewUsers      int64   // Users created in the last 30 days.
	TotalProducts int64   // Catalog size.
}

// ProductStats is the headline block of the admin product page.
type ProductStats struct {
	TotalProducts int64   // Catalog size.
	NewSales      int64   // Paid orders in the last 30 days.
	TotalRevenue  float64 // Sum of all order totals.
}

// OrderStats is the headline block of the admin order page.
type OrderStats struct {
	TotalOrders  int64   // All-time order count.
	NewOrders    int64   // Orders in the last 30 days.
	TotalRevenue float64 // Sum of all order totals.
}

// UserStats is the headline block of the admin user page.
type UserStats struct {
	TotalUsers  int64 // All-time account count.
	NewUsers    int64 // Accounts created in the last 30 days.
	AdminUsers  int64 // Accounts with the admin role.
	ClientUsers int64 // Accounts with the client role.
}

// CategoryValue is one slice of a category revenue breakdown.
type CategoryValue struct {
	CategoryID string  // Category identifier.
	Name       string  // Category display name.
	Value      float64 // Accumulated line revenue for the category.
}

// MonthlySales is one point of the current-year sales series.
type MonthlySales struct {
	Month time.Month // Calendar month.
	Total float64    // Sum of order totals placed that month.
}
