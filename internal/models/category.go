package models

import "time"

// Category labels a group of products. Products reference it by name only;
// there is no foreign key between the two.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
