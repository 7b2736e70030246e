package database

import (
	"fmt"
)

// A migration is a named, versioned batch of statements. Versions are
// applied in order, once each, tracked in schema_migrations. This
// replaces the one-off add-column scripts the site used to be managed
// with.
type migration struct {
	version int
	name    string
	stmts   []string
}

var migrations = []migration{
	{
		version: 1,
		name:    "base schema",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS products (
			    id BIGINT PRIMARY KEY AUTO_INCREMENT,
			    name JSON NOT NULL,
			    slug VARCHAR(255) NOT NULL,
			    description JSON NOT NULL,
			    full_description JSON NOT NULL,
			    price JSON NOT NULL,
			    image TEXT NOT NULL,
			    category VARCHAR(100) NOT NULL,
			    in_stock BOOLEAN NOT NULL DEFAULT TRUE,
			    specs TEXT,
			    external_links TEXT,
			    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			    UNIQUE KEY uk_slug (slug),
			    INDEX idx_category (category),
			    INDEX idx_created_at (created_at)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

			`CREATE TABLE IF NOT EXISTS orders (
			    id BIGINT PRIMARY KEY AUTO_INCREMENT,
			    order_id VARCHAR(64) NOT NULL,
			    customer_name VARCHAR(255) NOT NULL,
			    email VARCHAR(255) NOT NULL,
			    phone VARCHAR(64) NOT NULL,
			    address TEXT NOT NULL,
			    product_id BIGINT NOT NULL,
			    product_name VARCHAR(255) NOT NULL,
			    price JSON NOT NULL,
			    notes TEXT,
			    status ENUM('pending', 'preparing', 'shipped', 'completed', 'cancelled') NOT NULL DEFAULT 'pending',
			    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			    UNIQUE KEY uk_order_id (order_id),
			    INDEX idx_status (status),
			    INDEX idx_created_at (created_at)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

			`CREATE TABLE IF NOT EXISTS contacts (
			    id BIGINT PRIMARY KEY AUTO_INCREMENT,
			    first_name VARCHAR(100) NOT NULL,
			    last_name VARCHAR(100) NOT NULL,
			    email VARCHAR(255) NOT NULL,
			    subject VARCHAR(255) NOT NULL,
			    message TEXT NOT NULL,
			    captcha_answer INT NOT NULL,
			    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			    INDEX idx_created_at (created_at)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

			`CREATE TABLE IF NOT EXISTS admins (
			    id BIGINT PRIMARY KEY AUTO_INCREMENT,
			    username VARCHAR(100) NOT NULL,
			    password VARCHAR(255) NOT NULL,
			    UNIQUE KEY uk_username (username)
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		},
	},
	{
		version: 2,
		name:    "settings table",
		stmts: []string{
			`CREATE TABLE IF NOT EXISTS settings (
			    id BIGINT PRIMARY KEY AUTO_INCREMENT,
			    site_title TEXT,
			    site_desc TEXT,
			    logo_url TEXT,
			    favicon_url TEXT,
			    social_facebook TEXT,
			    social_twitter TEXT,
			    social_instagram TEXT,
			    social_linkedin TEXT,
			    bank_name TEXT,
			    bank_account_number TEXT,
			    bank_iban TEXT,
			    bank_reference_prefix TEXT,
			    block_code_screenshot1 TEXT,
			    block_code_screenshot2 TEXT,
			    block_code_video_url TEXT,
			    about_image TEXT,
			    show_bank_transfer BOOLEAN DEFAULT TRUE,
			    show_external_links BOOLEAN DEFAULT TRUE,
			    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
			) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		},
	},
	{
		version: 3,
		name:    "settings download url",
		stmts: []string{
			`ALTER TABLE settings ADD COLUMN download_url TEXT`,
		},
	},
	{
		version: 4,
		name:    "admin email",
		stmts: []string{
			`ALTER TABLE admins ADD COLUMN email VARCHAR(255)`,
		},
	},
}

// Migrate applies all pending migrations in version order and ensures
// the settings singleton row exists.
func (db *DB) Migrate() error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
	    version INT PRIMARY KEY,
	    name VARCHAR(255) NOT NULL,
	    applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`)
	if err != nil {
		return fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	for _, m := range migrations {
		var applied int
		err := db.QueryRow(
			`SELECT COUNT(*) FROM schema_migrations WHERE version = ?`, m.version).
			Scan(&applied)
		if err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.version, err)
		}
		if applied > 0 {
			continue
		}

		for _, stmt := range m.stmts {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("migration %d (%s) failed: %w", m.version, m.name, err)
			}
		}
		if _, err := db.Exec(
			`INSERT INTO schema_migrations (version, name) VALUES (?, ?)`,
			m.version, m.name); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.version, err)
		}
	}

	// The settings table always holds exactly one row.
	if _, err := db.Exec(`
		INSERT INTO settings (site_title)
		SELECT 'CLK Tech' FROM DUAL
		WHERE NOT EXISTS (SELECT 1 FROM settings)
	`); err != nil {
		return fmt.Errorf("failed to seed settings row: %w", err)
	}

	return nil
}

// PendingMigrations returns the versions not yet applied, for the check
// command.
func (db *DB) PendingMigrations() ([]int, error) {
	applied := map[int]bool{}
	rows, err := db.Query(`SELECT version FROM schema_migrations`)
	if err != nil {
		// Before the first migrate run the table itself is missing.
		for _, m := range migrations {
			applied[m.version] = false
		}
	} else {
		defer rows.Close()
		for rows.Next() {
			var v int
			if err := rows.Scan(&v); err != nil {
				return nil, err
			}
			applied[v] = true
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
	}

	var pending []int
	for _, m := range migrations {
		if !applied[m.version] {
			pending = append(pending, m.version)
		}
	}
	return pending, nil
}
