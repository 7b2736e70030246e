package models

import "time"

type Contact struct {
	ID            int64     `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Subject       string    `json:"subject"`
	Message       string    `json:"message"`
	CaptchaAnswer int       `json:"captchaAnswer"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ContactInput is the public contact-form payload. The captcha challenge
// is generated and checked client-side; the answer is stored as-is.
type ContactInput struct {
	FirstName     string `json:"firstName" binding:"required"`
	LastName      string `json:"lastName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Subject       string `json:"subject" binding:"required"`
	Message       string `json:"message" binding:"required"`
	CaptchaAnswer int    `json:"captchaAnswer"`
}
