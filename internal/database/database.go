package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/go-sql-driver/mysql"
)

// OpenDB creates and configures a MySQL connection pool for the given DSN.
// parseTime is forced on because the store scans DATETIME columns into time.Time.
func OpenDB(dsn string) (*sql.DB, error) {
	// 1. Normalize the Data Source Name (DSN)
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_DSN_PRIMARY: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC

	// 2. Open a new connection pool.
	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	// 3. Configure the connection pool settings.
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	// 4. Ping the database to verify the connection.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		log.Printf("Error connecting to database at %s: %v", cfg.Addr, err)
		return nil, err
	}

	log.Println("Database connection pool established successfully")
	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		password_hash VARCHAR(255) NULL,
		selected_address_id VARCHAR(64) NULL,
		selected_credit_card_id VARCHAR(64) NULL,
		created_at DATETIME(3) NOT NULL,
		UNIQUE KEY uq_users_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS addresses (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		position INT NOT NULL,
		street VARCHAR(255) NOT NULL,
		neighborhood VARCHAR(255) NOT NULL,
		city VARCHAR(255) NOT NULL,
		state VARCHAR(64) NOT NULL,
		zip_code VARCHAR(16) NOT NULL,
		KEY idx_addresses_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS credit_cards (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		position INT NOT NULL,
		brand VARCHAR(64) NOT NULL,
		last4 CHAR(4) NOT NULL,
		expiry VARCHAR(16) NOT NULL,
		KEY idx_credit_cards_user (user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		items JSON NOT NULL,
		address JSON NOT NULL,
		payment_method VARCHAR(64) NOT NULL,
		subtotal DECIMAL(10,2) NOT NULL,
		shipping_fee DECIMAL(10,2) NOT NULL,
		total DECIMAL(10,2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		created_at DATETIME(3) NOT NULL,
		updated_at DATETIME(3) NULL,
		estimated_delivery DATETIME(3) NOT NULL,
		KEY idx_orders_user (user_id, created_at)
	)`,
}

// Migrate creates the tables the store needs if they do not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
