package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/rosterly/payrun-backend-go/internal/config"
	appHTTP "github.com/rosterly/payrun-backend-go/internal/handler/http"
	"github.com/rosterly/payrun-backend-go/internal/pkg/database"
	"github.com/rosterly/payrun-backend-go/internal/pkg/jwt"
	"github.com/rosterly/payrun-backend-go/internal/repository/postgresql"
	payrunService "github.com/rosterly/payrun-backend-go/internal/service/payrun"
	rateService "github.com/rosterly/payrun-backend-go/internal/service/rate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "payrun-rosterly"),
		slog.String("env", cfg.App.Env),
	)

	payRunRepo := postgresql.NewPayRunRepository(db)
	rateRepo := postgresql.NewRateRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	tenantRepo := postgresql.NewTenantRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	payRunSvc := payrunService.NewPayRunService(db, payRunRepo, shiftRepo, rateRepo, employeeRepo, tenantRepo, logger)
	rateSvc := rateService.NewRateService(rateRepo, employeeRepo, logger)

	payPeriodHandler := appHTTP.NewPayPeriodHandler(cfg.App.DefaultTimezone)
	payRunHandler := appHTTP.NewPayRunHandler(payRunSvc)
	rateHandler := appHTTP.NewRateHandler(rateSvc)

	router := appHTTP.NewRouter(
		JWTService,
		payPeriodHandler,
		payRunHandler,
		rateHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
