package models

import "time"

// Contact is a message submitted through the public contact form.
// ServiceInterest is optional on the form and nullable in the table.
type Contact struct {
	ID              int64     `db:"id" json:"id"`
	FullName        string    `db:"full_name" json:"full_name"`
	Email           string    `db:"email" json:"email"`
	ServiceInterest *string   `db:"service_interest" json:"service_interest"`
	Message         string    `db:"message" json:"message"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
