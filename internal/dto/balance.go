package dto

// ReconcileParams optionally targets a date other than today.
type ReconcileParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ReconcileResponse reports the outcome of a manual reconciler run.
type ReconcileResponse struct {
	Date     string `json:"date"`
	Inserted int64  `json:"inserted"`
}
