package database

import (
	"fmt"

	"github.com/malakstore/souq/internal/models"
	"github.com/malakstore/souq/internal/store"
)

// SaveSnapshot persists the entire in-memory store in one transaction,
// replacing the previous snapshot. This is the "explicit save" operation;
// nothing writes to the database outside it.
func (db *DB) SaveSnapshot(s *store.Store) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin snapshot: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM order_items",
		"DELETE FROM orders",
		"DELETE FROM products",
		"DELETE FROM admins",
		"DELETE FROM notifications",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to clear snapshot: %w", err)
		}
	}

	for _, p := range s.Products() {
		_, err := tx.Exec(`
			INSERT INTO products (id, name, category, price, stock, discount, description, image_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, p.ID, p.Name, string(p.Category), p.Price, p.Stock, p.Discount, p.Description, p.ImageURL)
		if err != nil {
			return fmt.Errorf("failed to save product %s: %w", p.ID, err)
		}
	}

	for _, o := range s.Orders() {
		_, err := tx.Exec(`
			INSERT INTO orders (id, user_id, customer_name, customer_phone, customer_location, total, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, o.ID, o.UserID, o.CustomerName, o.CustomerPhone, o.CustomerLocation, o.Total, string(o.Status), o.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save order %s: %w", o.ID, err)
		}
		for _, item := range o.Items {
			_, err := tx.Exec(`
				INSERT INTO order_items (order_id, product_id, name, price, discount, quantity)
				VALUES (?, ?, ?, ?, ?, ?)
			`, o.ID, item.ID, item.Name, item.Price, item.Discount, item.Quantity)
			if err != nil {
				return fmt.Errorf("failed to save order item: %w", err)
			}
		}
	}

	for _, a := range s.Admins() {
		_, err := tx.Exec(`
			INSERT INTO admins (id, name, email, password, status)
			VALUES (?, ?, ?, ?, ?)
		`, a.ID, a.Name, a.Email, a.Password, string(a.Status))
		if err != nil {
			return fmt.Errorf("failed to save admin %s: %w", a.ID, err)
		}
	}

	for _, n := range s.Notifications() {
		_, err := tx.Exec(`
			INSERT INTO notifications (id, message, created_at)
			VALUES (?, ?, ?)
		`, n.ID, n.Message, n.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save notification %s: %w", n.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot restores the persisted state into an in-memory store. Rows
// are read oldest first so prepend-on-load reproduces the newest-first
// ordering of orders and notifications.
func (db *DB) LoadSnapshot(s *store.Store) error {
	rows, err := db.Query("SELECT id, name, category, price, stock, discount, description, image_url FROM products")
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p models.Product
		var category string
		if err := rows.Scan(&p.ID, &p.Name, &category, &p.Price, &p.Stock, &p.Discount, &p.Description, &p.ImageURL); err != nil {
			return fmt.Errorf("failed to scan product: %w", err)
		}
		p.Category = models.ProductCategory(category)
		p.IsOffer = p.Discount > 0
		s.UpsertProduct(p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	orderRows, err := db.Query(`
		SELECT id, user_id, customer_name, customer_phone, customer_location, total, status, created_at
		FROM orders ORDER BY created_at ASC
	`)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	defer orderRows.Close()
	for orderRows.Next() {
		var o models.Order
		var status string
		if err := orderRows.Scan(&o.ID, &o.UserID, &o.CustomerName, &o.CustomerPhone, &o.CustomerLocation, &o.Total, &status, &o.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan order: %w", err)
		}
		o.Status = models.OrderStatus(status)
		o.Items, err = db.loadOrderItems(o.ID)
		if err != nil {
			return err
		}
		s.PrependOrder(o)
	}
	if err := orderRows.Err(); err != nil {
		return err
	}

	adminRows, err := db.Query("SELECT id, name, email, password, status FROM admins")
	if err != nil {
		return fmt.Errorf("failed to load admins: %w", err)
	}
	defer adminRows.Close()
	for adminRows.Next() {
		var a models.User
		var status string
		if err := adminRows.Scan(&a.ID, &a.Name, &a.Email, &a.Password, &status); err != nil {
			return fmt.Errorf("failed to scan admin: %w", err)
		}
		a.Role = models.RoleAdmin
		a.Status = models.AdminStatus(status)
		s.AddAdmin(a)
	}
	if err := adminRows.Err(); err != nil {
		return err
	}

	notifRows, err := db.Query("SELECT id, message, created_at FROM notifications ORDER BY created_at ASC")
	if err != nil {
		return fmt.Errorf("failed to load notifications: %w", err)
	}
	defer notifRows.Close()
	for notifRows.Next() {
		var n models.Notification
		if err := notifRows.Scan(&n.ID, &n.Message, &n.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan notification: %w", err)
		}
		s.PrependNotification(n)
	}
	return notifRows.Err()
}

func (db *DB) loadOrderItems(orderID string) ([]models.CartItem, error) {
	rows, err := db.Query(`
		SELECT product_id, name, price, discount, quantity
		FROM order_items WHERE order_id = ? ORDER BY id ASC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order items: %w", err)
	}
	defer rows.Close()

	var items []models.CartItem
	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Discount, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		item.IsOffer = item.Discount > 0
		items = append(items, item)
	}
	return items, rows.Err()
}
