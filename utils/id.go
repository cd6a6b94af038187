package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateRandomID tạo ID ngẫu nhiên cho task: 16 byte -> 32 ký tự hex
func GenerateRandomID() (string, error) {
	bytes := make([]byte, 16)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
