package models

// DashboardStats carries the headline numbers for the admin dashboard.
type DashboardStats struct {
	TotalStudents     int   `json:"total_students"`
	TotalTeachers     int   `json:"total_teachers"`
	MonthlySpend      int64 `json:"monthly_spend"`
	PendingFeeBalance int64 `json:"pending_fee_balance"`
	UpcomingEvents    int   `json:"upcoming_events"`
}
