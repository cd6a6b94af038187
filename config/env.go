package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV nạp biến môi trường từ file .env; không có file thì dùng
// biến môi trường của hệ thống
func LoadENV() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
