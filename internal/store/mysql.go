package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

const mysqlDuplicateEntry = 1062

var _ Store = (*MySQL)(nil)

// MySQL is a Store backed by the tables created in database.Migrate.
type MySQL struct {
	DB *sql.DB
}

// NewMySQL wraps an open connection pool.
func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{DB: db}
}

func (s *MySQL) Close() error { return s.DB.Close() }

// translateDuplicate maps MySQL's duplicate-key error onto the store errors.
func translateDuplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		if strings.Contains(me.Message, "email") {
			return ErrDuplicateEmail
		}
		return ErrDuplicateID
	}
	return err
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ensureUpdated reports ErrNotFound for an UPDATE that matched no row. MySQL
// counts changed rows, so zero affected rows is confirmed with existsQuery.
func ensureUpdated(ctx context.Context, q rowQuerier, res sql.Result, existsQuery, id string) error {
	if n, err := res.RowsAffected(); err != nil || n > 0 {
		return nil
	}
	var exists int
	if err := q.QueryRowContext(ctx, existsQuery, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// --- Users ---

const selectUser = `
	SELECT id, name, email, password_hash, selected_address_id, selected_credit_card_id, created_at
	FROM users`

func (s *MySQL) scanUser(ctx context.Context, row *sql.Row) (*models.User, error) {
	var (
		u                            models.User
		passwordHash, selAddr, selCC sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Email, &passwordHash, &selAddr, &selCC, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	u.PasswordHash = passwordHash.String
	u.SelectedAddressID = stringPtr(selAddr)
	u.SelectedCreditCardID = stringPtr(selCC)

	if err := s.loadProfile(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// loadProfile fills the user's addresses and cards in insertion order.
func (s *MySQL) loadProfile(ctx context.Context, u *models.User) error {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT id, street, neighborhood, city, state, zip_code
		FROM addresses WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return fmt.Errorf("query addresses: %w", err)
	}
	defer rows.Close()

	u.Addresses = []models.Address{}
	for rows.Next() {
		var a models.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.Neighborhood, &a.City, &a.State, &a.ZipCode); err != nil {
			return fmt.Errorf("scan address: %w", err)
		}
		u.Addresses = append(u.Addresses, a)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	cardRows, err := s.DB.QueryContext(ctx, `
		SELECT id, brand, last4, expiry
		FROM credit_cards WHERE user_id = ? ORDER BY position`, u.ID)
	if err != nil {
		return fmt.Errorf("query credit cards: %w", err)
	}
	defer cardRows.Close()

	u.CreditCards = []models.CreditCard{}
	for cardRows.Next() {
		var c models.CreditCard
		if err := cardRows.Scan(&c.ID, &c.Brand, &c.Last4, &c.Expiry); err != nil {
			return fmt.Errorf("scan credit card: %w", err)
		}
		u.CreditCards = append(u.CreditCards, c)
	}
	return cardRows.Err()
}

func (s *MySQL) FindUser(ctx context.Context, id string) (*models.User, error) {
	return s.scanUser(ctx, s.DB.QueryRowContext(ctx, selectUser+" WHERE id = ?", id))
}

func (s *MySQL) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.scanUser(ctx, s.DB.QueryRowContext(ctx, selectUser+" WHERE email = ?", normalizeEmail(email)))
}

func (s *MySQL) InsertUser(ctx context.Context, u *models.User) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO users (id, name, email, password_hash, selected_address_id, selected_credit_card_id, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			u.ID, u.Name, normalizeEmail(u.Email), sql.NullString{String: u.PasswordHash, Valid: u.PasswordHash != ""},
			nullString(u.SelectedAddressID), nullString(u.SelectedCreditCardID), u.CreatedAt)
		if err != nil {
			return translateDuplicate(err)
		}
		return writeProfile(ctx, tx, u)
	})
}

// UpdateUser rewrites the user row together with its addresses and cards.
func (s *MySQL) UpdateUser(ctx context.Context, u *models.User) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, `
			UPDATE users SET name = ?, email = ?, selected_address_id = ?, selected_credit_card_id = ?
			WHERE id = ?`,
			u.Name, normalizeEmail(u.Email), nullString(u.SelectedAddressID), nullString(u.SelectedCreditCardID), u.ID)
		if err != nil {
			return translateDuplicate(err)
		}
		if err := ensureUpdated(ctx, tx, res, "SELECT 1 FROM users WHERE id = ?", u.ID); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM addresses WHERE user_id = ?", u.ID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM credit_cards WHERE user_id = ?", u.ID); err != nil {
			return err
		}
		return writeProfile(ctx, tx, u)
	})
}

func writeProfile(ctx context.Context, tx *sql.Tx, u *models.User) error {
	for i, a := range u.Addresses {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO addresses (id, user_id, position, street, neighborhood, city, state, zip_code)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, u.ID, i, a.Street, a.Neighborhood, a.City, a.State, a.ZipCode)
		if err != nil {
			return fmt.Errorf("insert address: %w", err)
		}
	}
	for i, c := range u.CreditCards {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO credit_cards (id, user_id, position, brand, last4, expiry)
			VALUES (?, ?, ?, ?, ?, ?)`,
			c.ID, u.ID, i, c.Brand, c.Last4, c.Expiry)
		if err != nil {
			return fmt.Errorf("insert credit card: %w", err)
		}
	}
	return nil
}

func (s *MySQL) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}

// --- Orders ---

const selectOrder = `
	SELECT id, user_id, items, address, payment_method, subtotal, shipping_fee, total,
	       status, created_at, updated_at, estimated_delivery
	FROM orders`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		o                   models.Order
		itemsJSON, addrJSON []byte
		updatedAt           sql.NullTime
	)
	err := row.Scan(&o.ID, &o.UserID, &itemsJSON, &addrJSON, &o.PaymentMethod,
		&o.Subtotal, &o.ShippingFee, &o.Total, &o.Status, &o.CreatedAt, &updatedAt, &o.EstimatedDelivery)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if err := json.Unmarshal(addrJSON, &o.Address); err != nil {
		return nil, fmt.Errorf("decode order address: %w", err)
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		o.UpdatedAt = &t
	}
	return &o, nil
}

func (s *MySQL) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	o, err := scanOrder(s.DB.QueryRowContext(ctx, selectOrder+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return o, err
}

func (s *MySQL) ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	rows, err := s.DB.QueryContext(ctx, selectOrder+" WHERE user_id = ? ORDER BY created_at DESC", userID)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	orders := []*models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *MySQL) InsertOrder(ctx context.Context, o *models.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	addr, err := json.Marshal(o.Address)
	if err != nil {
		return err
	}

	_, err = s.DB.ExecContext(ctx, `
		INSERT INTO orders (id, user_id, items, address, payment_method, subtotal, shipping_fee, total,
		                    status, created_at, updated_at, estimated_delivery)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		o.ID, o.UserID, items, addr, o.PaymentMethod, o.Subtotal, o.ShippingFee, o.Total,
		o.Status, o.CreatedAt, nullTime(o.UpdatedAt), o.EstimatedDelivery)
	return translateDuplicate(err)
}

// UpdateOrder persists the mutable part of an order: its status.
func (s *MySQL) UpdateOrder(ctx context.Context, o *models.Order) error {
	res, err := s.DB.ExecContext(ctx,
		"UPDATE orders SET status = ?, updated_at = ? WHERE id = ?",
		o.Status, nullTime(o.UpdatedAt), o.ID)
	if err != nil {
		return err
	}
	return ensureUpdated(ctx, s.DB, res, "SELECT 1 FROM orders WHERE id = ?", o.ID)
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
