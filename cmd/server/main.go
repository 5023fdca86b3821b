package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"

	"goodlife-admin-api/config"
	"goodlife-admin-api/internal/attendance"
	"goodlife-admin-api/internal/donation"
	"goodlife-admin-api/internal/event"
	"goodlife-admin-api/internal/expense"
	"goodlife-admin-api/internal/finance"
	"goodlife-admin-api/internal/logger"
	"goodlife-admin-api/internal/person"
	"goodlife-admin-api/internal/report"
	"goodlife-admin-api/internal/storage"
	"goodlife-admin-api/internal/visitor"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.GinMode); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer func() { _ = zap.L().Sync() }()

	db, err := storage.Open(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := storage.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/finance")
	})

	visitorService := &visitor.VisitorService{DB: db}
	visitor.RegisterRoutes(r, visitorService)

	donationService := &donation.DonationService{DB: db}
	donation.RegisterRoutes(r, donationService)

	expenseService := &expense.ExpenseService{DB: db}
	expense.RegisterRoutes(r, expenseService)

	financeService := &finance.FinanceService{DB: db}
	finance.RegisterRoutes(r, financeService)

	personService := &person.PersonService{DB: db}
	person.RegisterRoutes(r, personService)

	eventService := &event.EventService{DB: db}
	event.RegisterRoutes(r, eventService)

	attendanceService := &attendance.AttendanceService{DB: db}
	attendance.RegisterRoutes(r, attendanceService)

	reportService := &report.ReportService{DB: db}
	report.RegisterRoutes(r, reportService)

	zap.L().Info("starting server", zap.String("addr", "0.0.0.0:"+cfg.Port))
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
