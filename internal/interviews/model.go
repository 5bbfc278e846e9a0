package interviews

import "time"

// Experience is one shared interview story.
type Experience struct {
	ID         string    `json:"id"`
	Company    string    `json:"company"`
	Role       string    `json:"role"`
	Experience string    `json:"experience"`
	Questions  string    `json:"questions"`
	User       string    `json:"user"`
	Date       string    `json:"date"`
	CreatedAt  time.Time `json:"-"`
}
