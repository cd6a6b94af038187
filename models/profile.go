package models

// Profile là tài khoản người dùng của ứng dụng
type Profile struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	// Mật khẩu đã được mã hóa (bcrypt), không bao giờ trả về cho client
	Password string `json:"-"`
}

// Identity là danh tính của người gọi đã được xác thực,
// được middleware gắn vào mỗi request
type Identity struct {
	ID    int64
	Email string
}
