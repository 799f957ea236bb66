package admin

type OverviewResponse struct {
	TotalEmployees int64 `json:"totalEmployees"`
	ActiveClockIns int64 `json:"activeClockIns"`
	OnLunch        int64 `json:"onLunch"`
	TodayEntries   int64 `json:"todayEntries"`
}

type ResetResponse struct {
	Message string `json:"message"`
}
