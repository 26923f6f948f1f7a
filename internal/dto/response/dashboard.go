package response

type StatusBucket struct {
	Count int64   `json:"count"`
	Total float64 `json:"total,omitempty"`
}

type DashboardStatsResponse struct {
	Properties      map[string]StatusBucket `json:"properties"`
	Payments        map[string]StatusBucket `json:"payments"`
	ActiveTenants   int64                   `json:"active_tenants"`
	OpenMaintenance int64                   `json:"open_maintenance"`
}
