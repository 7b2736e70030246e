package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/models"
)

type settingsStore struct {
	db *database.DB
}

// NewSettingsStore creates the MySQL-backed settings accessor. The
// settings table holds exactly one row, seeded by the migrate command.
func NewSettingsStore(db *database.DB) SettingsStore {
	return &settingsStore{db: db}
}

const settingsColumns = `id, site_title, site_desc, logo_url, favicon_url,
	social_facebook, social_twitter, social_instagram, social_linkedin,
	bank_name, bank_account_number, bank_iban, bank_reference_prefix,
	block_code_screenshot1, block_code_screenshot2, block_code_video_url,
	about_image, download_url, show_bank_transfer, show_external_links,
	created_at, updated_at`

func scanSettings(row interface{ Scan(...interface{}) error }) (*models.Settings, error) {
	var st models.Settings
	var text [17]sql.NullString
	var havale, harici sql.NullBool
	err := row.Scan(&st.ID, &text[0], &text[1], &text[2], &text[3], &text[4],
		&text[5], &text[6], &text[7], &text[8], &text[9], &text[10],
		&text[11], &text[12], &text[13], &text[14], &text[15], &text[16],
		&havale, &harici, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		return nil, err
	}

	st.SiteTitle = text[0].String
	st.SiteDesc = text[1].String
	st.LogoURL = text[2].String
	st.FaviconURL = text[3].String
	st.SocialFacebook = text[4].String
	st.SocialTwitter = text[5].String
	st.SocialInstagram = text[6].String
	st.SocialLinkedin = text[7].String
	st.BankName = text[8].String
	st.BankAccountNumber = text[9].String
	st.BankIban = text[10].String
	st.BankReferencePrefix = text[11].String
	st.BlockCodeScreenshot1 = text[12].String
	st.BlockCodeScreenshot2 = text[13].String
	st.BlockCodeVideoURL = text[14].String
	st.AboutImage = text[15].String
	st.DownloadURL = text[16].String

	// Rows created before the feature-toggle columns existed hold NULL,
	// which means enabled.
	st.Havale = !havale.Valid || havale.Bool
	st.Harici = !harici.Valid || harici.Bool
	return &st, nil
}

func (s *settingsStore) Get(ctx context.Context) (*models.Settings, error) {
	st, err := scanSettings(s.db.QueryRowContext(ctx,
		`SELECT `+settingsColumns+` FROM settings ORDER BY id LIMIT 1`))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return st, nil
}

func (s *settingsStore) Update(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	sets := make([]string, 0, 20)
	args := make([]interface{}, 0, 21)
	add := func(col string, v interface{}) {
		sets = append(sets, col+" = ?")
		args = append(args, v)
	}

	text := []struct {
		col string
		val *string
	}{
		{"site_title", patch.SiteTitle},
		{"site_desc", patch.SiteDesc},
		{"logo_url", patch.LogoURL},
		{"favicon_url", patch.FaviconURL},
		{"social_facebook", patch.SocialFacebook},
		{"social_twitter", patch.SocialTwitter},
		{"social_instagram", patch.SocialInstagram},
		{"social_linkedin", patch.SocialLinkedin},
		{"bank_name", patch.BankName},
		{"bank_account_number", patch.BankAccountNumber},
		{"bank_iban", patch.BankIban},
		{"bank_reference_prefix", patch.BankReferencePrefix},
		{"block_code_screenshot1", patch.BlockCodeScreenshot1},
		{"block_code_screenshot2", patch.BlockCodeScreenshot2},
		{"block_code_video_url", patch.BlockCodeVideoURL},
		{"about_image", patch.AboutImage},
		{"download_url", patch.DownloadURL},
	}
	for _, f := range text {
		if f.val != nil {
			add(f.col, *f.val)
		}
	}
	if patch.Havale != nil {
		add("show_bank_transfer", *patch.Havale)
	}
	if patch.Harici != nil {
		add("show_external_links", *patch.Harici)
	}
	if len(sets) == 0 {
		return current, nil
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")

	args = append(args, current.ID)
	_, err = s.db.ExecContext(ctx,
		"UPDATE settings SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return s.Get(ctx)
}
