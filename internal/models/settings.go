package models

import "time"

// Settings is the site-wide configuration singleton. The havale flag
// toggles the bank transfer option on the storefront, harici the
// external marketplace links. Rows predating those columns hold NULL,
// which reads as enabled.
type Settings struct {
	ID                   int64     `json:"id"`
	SiteTitle            string    `json:"siteTitle"`
	SiteDesc             string    `json:"siteDesc"`
	LogoURL              string    `json:"logoUrl"`
	FaviconURL           string    `json:"faviconUrl"`
	SocialFacebook       string    `json:"socialFacebook"`
	SocialTwitter        string    `json:"socialTwitter"`
	SocialInstagram      string    `json:"socialInstagram"`
	SocialLinkedin       string    `json:"socialLinkedin"`
	BankName             string    `json:"bankName"`
	BankAccountNumber    string    `json:"bankAccountNumber"`
	BankIban             string    `json:"bankIban"`
	BankReferencePrefix  string    `json:"bankReferencePrefix"`
	BlockCodeScreenshot1 string    `json:"blockCodeScreenshot1"`
	BlockCodeScreenshot2 string    `json:"blockCodeScreenshot2"`
	BlockCodeVideoURL    string    `json:"blockCodeVideoUrl"`
	AboutImage           string    `json:"aboutImage"`
	DownloadURL          string    `json:"downloadUrl"`
	Havale               bool      `json:"havale"`
	Harici               bool      `json:"harici"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// SettingsPatch is a partial settings update; nil fields stay untouched.
type SettingsPatch struct {
	SiteTitle            *string `json:"siteTitle"`
	SiteDesc             *string `json:"siteDesc"`
	LogoURL              *string `json:"logoUrl"`
	FaviconURL           *string `json:"faviconUrl"`
	SocialFacebook       *string `json:"socialFacebook"`
	SocialTwitter        *string `json:"socialTwitter"`
	SocialInstagram      *string `json:"socialInstagram"`
	SocialLinkedin       *string `json:"socialLinkedin"`
	BankName             *string `json:"bankName"`
	BankAccountNumber    *string `json:"bankAccountNumber"`
	BankIban             *string `json:"bankIban"`
	BankReferencePrefix  *string `json:"bankReferencePrefix"`
	BlockCodeScreenshot1 *string `json:"blockCodeScreenshot1"`
	BlockCodeScreenshot2 *string `json:"blockCodeScreenshot2"`
	BlockCodeVideoURL    *string `json:"blockCodeVideoUrl"`
	AboutImage           *string `json:"aboutImage"`
	DownloadURL          *string `json:"downloadUrl"`
	Havale               *bool   `json:"havale"`
	Harici               *bool   `json:"harici"`
}
