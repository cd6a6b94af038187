package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver cho database/sql
)

var db *sql.DB

// GetDB trả về đối tượng database
func GetDB() *sql.DB {
	return db
}

// StartPostgreSQL khởi tạo kết nối với PostgreSQL và tạo bảng nếu chưa tồn tại
func StartPostgreSQL() error {
	uri := os.Getenv("POSTGRESQL_URI")
	if uri == "" {
		return errors.New("you must set your 'POSTGRESQL_URI' environmental variable")
	}

	var err error
	db, err = sql.Open("pgx", uri)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.PingContext(context.Background())
	if err != nil {
		return fmt.Errorf("cannot connect to PostgreSQL: %w", err)
	}

	fmt.Println("Connected to PostgreSQL successfully")

	// Tạo bảng nếu chưa tồn tại
	err = createTables()
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	return nil
}

// createTables tạo bảng nếu chưa tồn tại. Xóa một profile sẽ xóa luôn
// các task thuộc về nó (ON DELETE CASCADE)
func createTables() error {
	query := `
	CREATE TABLE IF NOT EXISTS profiles (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		surname VARCHAR(255) NOT NULL,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR(50) PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
	`
	_, err := db.Exec(query)
	if err != nil {
		return err
	}

	fmt.Println("Tables created or already exist")
	return nil
}

// ClosePostgreSQL đóng kết nối với PostgreSQL
func ClosePostgreSQL() {
	if db != nil {
		err := db.Close()
		if err != nil {
			panic(err)
		}
		fmt.Println("Database connection closed")
	}
}
