package database

// SetupSchema creates the snapshot tables used by explicit saves. The
// in-memory store stays authoritative while the process runs; these tables
// only hold the latest persisted picture of it.
func (db *DB) SetupSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
		    id VARCHAR(36) PRIMARY KEY,
		    name VARCHAR(255) NOT NULL,
		    category VARCHAR(32) NOT NULL,
		    price DECIMAL(10,2) NOT NULL,
		    stock INT NOT NULL DEFAULT 0,
		    discount DECIMAL(5,2) NOT NULL DEFAULT 0,
		    description TEXT,
		    image_url VARCHAR(512),
		    INDEX idx_category (category)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS orders (
		    id VARCHAR(36) PRIMARY KEY,
		    user_id VARCHAR(36) NOT NULL,
		    customer_name VARCHAR(255) NOT NULL,
		    customer_phone VARCHAR(64) NOT NULL,
		    customer_location VARCHAR(512) NOT NULL,
		    total DECIMAL(10,2) NOT NULL,
		    status ENUM('PREPARING', 'ON_WAY', 'DELIVERED') NOT NULL,
		    created_at TIMESTAMP NOT NULL,
		    INDEX idx_user_id (user_id),
		    INDEX idx_status (status),
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS order_items (
		    id BIGINT PRIMARY KEY AUTO_INCREMENT,
		    order_id VARCHAR(36) NOT NULL,
		    product_id VARCHAR(36) NOT NULL,
		    name VARCHAR(255) NOT NULL,
		    price DECIMAL(10,2) NOT NULL,
		    discount DECIMAL(5,2) NOT NULL DEFAULT 0,
		    quantity INT NOT NULL,
		    FOREIGN KEY (order_id) REFERENCES orders(id),
		    INDEX idx_order_id (order_id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS admins (
		    id VARCHAR(36) PRIMARY KEY,
		    name VARCHAR(255) NOT NULL,
		    email VARCHAR(255) NOT NULL,
		    password VARCHAR(255) NOT NULL,
		    status ENUM('PENDING', 'ACCEPTED', 'REJECTED') NOT NULL,
		    UNIQUE KEY uk_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS notifications (
		    id VARCHAR(36) PRIMARY KEY,
		    message TEXT NOT NULL,
		    created_at TIMESTAMP NOT NULL,
		    INDEX idx_created_at (created_at)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all snapshot tables.
func (db *DB) DropSchema() error {
	queries := []string{
		"DROP TABLE IF EXISTS order_items",
		"DROP TABLE IF EXISTS orders",
		"DROP TABLE IF EXISTS notifications",
		"DROP TABLE IF EXISTS admins",
		"DROP TABLE IF EXISTS products",
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return err
		}
	}

	return nil
}
