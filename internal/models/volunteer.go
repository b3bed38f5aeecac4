package models

import "time"

type Volunteer struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	County          string    `json:"county"`
	AreasOfInterest []string  `json:"areas_of_interest"`
	Availability    string    `json:"availability"`
	CreatedAt       time.Time `json:"created_at"`
}
