package dto

// DashboardStats aggregates counts for the admin dashboard
type DashboardStats struct {
	TotalStudents    int64 `json:"totalStudents" example:"120"`
	TotalCourses     int64 `json:"totalCourses" example:"14"`
	TotalInstructors int64 `json:"totalInstructors" example:"9"`
	TotalResults     int64 `json:"totalResults" example:"310"`
}
