package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffhub/portal-backend-go/internal/config"
	appHTTP "github.com/staffhub/portal-backend-go/internal/handler/http"
	"github.com/staffhub/portal-backend-go/internal/pkg/cron"
	"github.com/staffhub/portal-backend-go/internal/pkg/database"
	"github.com/staffhub/portal-backend-go/internal/pkg/jwt"
	"github.com/staffhub/portal-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub/portal-backend-go/internal/service/attendance"
	changeService "github.com/staffhub/portal-backend-go/internal/service/change"
	employeeService "github.com/staffhub/portal-backend-go/internal/service/employee"
	"github.com/staffhub/portal-backend-go/internal/service/generator"
	statusService "github.com/staffhub/portal-backend-go/internal/service/status"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	changeRequestRepo := postgresql.NewChangeRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	periodChecker := postgresql.NewPeriodLockChecker(db)
	transactor := postgresql.NewTransactor(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	attendanceSvc := attendanceService.NewService(attendanceRepo)
	generatorSvc := generator.NewService(
		attendanceRepo,
		employeeRepo,
		leaveRequestRepo,
		holidayRepo,
		periodChecker,
		cfg.Generator.Workers,
	)
	statusSvc := statusService.NewService(employeeRepo, attendanceRepo, leaveRequestRepo)
	changeSvc := changeService.NewService(changeRequestRepo, employeeRepo, transactor)
	employeeSvc := employeeService.NewService(employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, generatorSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(statusSvc)
	changeHandler := appHTTP.NewChangeRequestHandler(changeSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc, changeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		attendanceHandler,
		dashboardHandler,
		changeHandler,
		employeeHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(generatorSvc, employeeRepo, db).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
			stop <- syscall.SIGTERM
		}
	}()

	<-stop
	fmt.Println("Shutting down...")
	_ = server.Close()
}
