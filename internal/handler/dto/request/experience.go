package request

type CreateExperienceRequest struct {
	Title      string `json:"title" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,min=1"`
	Currency   string `json:"currency" binding:"required,len=3"`
}
