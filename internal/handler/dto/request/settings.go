package request

// UpdateSettingRequest carries the new value for one commerce setting. The
// pointer distinguishes an absent value from an explicit zero.
type UpdateSettingRequest struct {
	Value *float64 `json:"value" binding:"required"`
}
