package database

import (
	"context"
	"database/sql"
)

// Table names mirror the collections used by the original deployment so an
// existing export can be imported without renaming anything.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role ENUM('main','sub') NOT NULL DEFAULT 'sub',
		receives_inquiries BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS inquiries (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		country VARCHAR(64) NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		tagline VARCHAR(255) NOT NULL DEFAULT '',
		category ENUM('skin','color') NOT NULL,
		img VARCHAR(1024) NOT NULL DEFAULT '',
		color_code VARCHAR(16) NOT NULL DEFAULT '',
		texture VARCHAR(1024) NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS media_assets (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		sub_title VARCHAR(255) NOT NULL DEFAULT '',
		type ENUM('video','pdf','archive') NOT NULL,
		file_path VARCHAR(1024) NOT NULL,
		thumbnail_path VARCHAR(1024) NOT NULL DEFAULT '',
		order_index INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS collection_showcase (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		title VARCHAR(255) NOT NULL,
		subtitle VARCHAR(255) NOT NULL DEFAULT '',
		image_url VARCHAR(1024) NOT NULL DEFAULT '',
		bg_color VARCHAR(16) NOT NULL DEFAULT '#F3F3F3',
		layout ENUM('standard','statement') NOT NULL DEFAULT 'standard',
		description TEXT,
		features TEXT,
		order_index INT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS contact_info (
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		address VARCHAR(512) NOT NULL DEFAULT '',
		phone VARCHAR(64) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL DEFAULT '',
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
}

// Migrate creates all tables when they do not exist yet. It is safe to run
// on every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
