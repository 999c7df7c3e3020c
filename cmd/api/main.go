package main

import (
	"fmt"
	"net/http"

	"github.com/pontolabs/ponto-backend-go/internal/config"
	appHTTP "github.com/pontolabs/ponto-backend-go/internal/handler/http"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/cron"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/database"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/jwt"
	"github.com/pontolabs/ponto-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/pontolabs/ponto-backend-go/internal/service/auth"
	employeeService "github.com/pontolabs/ponto-backend-go/internal/service/employee"
	holidayService "github.com/pontolabs/ponto-backend-go/internal/service/holiday"
	timesheetService "github.com/pontolabs/ponto-backend-go/internal/service/timesheet"
	domainTimesheet "github.com/pontolabs/ponto-backend-go/internal/domain/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	accountRepo := postgresql.NewAccountRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	loc := cfg.Location()

	nightStart, err := domainTimesheet.ParseTimeOfDay(cfg.Timesheet.NightStart)
	if err != nil {
		fmt.Println("Error parsing TIMESHEET_NIGHT_START:", err)
		return
	}
	nightEnd, err := domainTimesheet.ParseTimeOfDay(cfg.Timesheet.NightEnd)
	if err != nil {
		fmt.Println("Error parsing TIMESHEET_NIGHT_END:", err)
		return
	}

	calculator := timesheetService.NewHoursCalculator(timesheetService.CalculatorConfig{
		NightStart:           &nightStart,
		NightEnd:             &nightEnd,
		MealMinWorkedMinutes: cfg.Timesheet.MealMinWorkedMinutes,
	})
	lockPolicy := timesheetService.NewLockPolicy(cfg.Timesheet.EditWindow, loc)

	authSvc := serviceAuth.NewAuthService(accountRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		db,
		timesheetRepo,
		employeeRepo,
		holidayRepo,
		calculator,
		lockPolicy,
		cfg.Timesheet.MealAllowanceRate,
		loc,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	scheduler := cron.NewScheduler()
	cron.NewTimesheetJobs(timesheetRepo, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		employeeHandler,
		holidayHandler,
		timesheetHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
