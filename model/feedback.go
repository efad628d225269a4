package model

type Feedback struct {
	DTO
	Name    string  `gorm:"not null" json:"name"`
	Email   string  `json:"email"`
	Rating  int     `gorm:"not null" json:"rating"` // 1..5
	Message string  `gorm:"type:text" json:"message"`
	Reply   *string `gorm:"type:text" json:"reply,omitempty"`
}

type CreateFeedbackInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Message string `json:"message" validate:"required"`
}

type ReplyFeedbackInput struct {
	Reply string `json:"reply" validate:"required"`
}

type FilterFeedbackInput struct {
	Pagination
	Rating int `json:"rating" query:"rating" validate:"omitempty,gte=1,lte=5"`
}
