package models

import "time"

type Product struct {
	ID              int64     `json:"id"`
	Name            Localized `json:"name"`
	Slug            string    `json:"slug"`
	Description     Localized `json:"description"`
	FullDescription Localized `json:"fullDescription"`
	Price           Localized `json:"price"`
	Image           string    `json:"image"`
	Category        string    `json:"category"`
	InStock         bool      `json:"inStock"`
	Specs           string    `json:"specs"`         // freeform JSON string of key-value specs
	ExternalLinks   string    `json:"externalLinks"` // JSON string mapping platform to URL
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ProductInput is the validated create payload. Update paths reuse it
// through ProductPatch with per-field presence.
type ProductInput struct {
	Name            Localized
	Slug            string
	Description     Localized
	FullDescription Localized
	Price           Localized
	Image           string
	Category        string
	InStock         bool
	Specs           string
	ExternalLinks   string
}

// ProductPatch carries a partial update; nil fields are left untouched.
type ProductPatch struct {
	Name            *Localized
	Slug            *string
	Description     *Localized
	FullDescription *Localized
	Price           *Localized
	Image           *string
	Category        *string
	InStock         *bool
	Specs           *string
	ExternalLinks   *string
}
