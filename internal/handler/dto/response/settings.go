package response

import (
	"time"

	"experience-market/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromSettingView(view *queries.SettingView) *SettingResponse {
	var resp SettingResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromSettingViews(views []queries.SettingView) []SettingResponse {
	out := make([]SettingResponse, len(views))
	for i := range views {
		_ = copier.Copy(&out[i], &views[i])
	}
	return out
}
