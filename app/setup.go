package app

import (
	"os"

	"github.com/biosecret/todoapp-api/config"
	"github.com/biosecret/todoapp-api/database"
	"github.com/biosecret/todoapp-api/handlers"
	"github.com/biosecret/todoapp-api/router"
	"github.com/biosecret/todoapp-api/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupAndRunApp khởi động ứng dụng Fiber
func SetupAndRunApp() error {
	// Load biến môi trường từ file .env
	err := config.LoadENV()
	if err != nil {
		return err
	}

	// Khởi động PostgreSQL
	err = database.StartPostgreSQL()
	if err != nil {
		return err
	}

	// Đảm bảo kết nối với cơ sở dữ liệu được đóng sau khi ứng dụng kết thúc
	defer database.ClosePostgreSQL()

	// Tạo ứng dụng Fiber
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",                                 // Cho phép tất cả các nguồn (có thể điều chỉnh)
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS", // Các phương thức được phép
	}))

	// Đính kèm middleware để xử lý lỗi và ghi log
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	// Gắn các handler vào store PostgreSQL
	h := handlers.New(
		store.NewPostgresProfileStore(database.GetDB()),
		store.NewPostgresTaskStore(database.GetDB()),
	)

	// Thiết lập route cho ứng dụng
	router.SetupRoutes(app, h)

	// Đính kèm Swagger (nếu cần)
	config.AddSwaggerRoutes(app)

	// Lấy port từ biến môi trường và bắt đầu lắng nghe kết nối
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000" // Giá trị mặc định nếu PORT không được thiết lập
	}

	// Lắng nghe trên cổng chỉ định
	return app.Listen(":" + port)
}
