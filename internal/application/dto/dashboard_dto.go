package dto

// AdminDashboardStats conteos agregados para el panel admin.
type AdminDashboardStats struct {
	TotalUsers   int `json:"total_users"`
	Admins       int `json:"admins"`
	Managers     int `json:"managers"`
	Cooperatives int `json:"cooperatives"`
	Products     int `json:"products"`
}

// AdminDashboardResponse respuesta de GET /admin/dashboard.
type AdminDashboardResponse struct {
	Role    string              `json:"role"`
	Stats   AdminDashboardStats `json:"stats"`
	Message string              `json:"message"`
}

// ManagerDashboardResponse respuesta de GET /manager/dashboard.
type ManagerDashboardResponse struct {
	Role     string        `json:"role"`
	User     *UserResponse `json:"user"`
	Products int           `json:"products"`
	Message  string        `json:"message"`
}
