package main

import (
	"fmt"
	"net/http"

	"github.com/kadro-hq/kadro-backend-go/internal/config"
	appHTTP "github.com/kadro-hq/kadro-backend-go/internal/handler/http"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/database"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/jwt"
	"github.com/kadro-hq/kadro-backend-go/internal/repository/postgresql"
	advanceService "github.com/kadro-hq/kadro-backend-go/internal/service/advance"
	authService "github.com/kadro-hq/kadro-backend-go/internal/service/auth"
	businessService "github.com/kadro-hq/kadro-backend-go/internal/service/business"
	employeeService "github.com/kadro-hq/kadro-backend-go/internal/service/employee"
	leaveService "github.com/kadro-hq/kadro-backend-go/internal/service/leave"
	paymentService "github.com/kadro-hq/kadro-backend-go/internal/service/payment"
	payrollService "github.com/kadro-hq/kadro-backend-go/internal/service/payroll"
	timesheetService "github.com/kadro-hq/kadro-backend-go/internal/service/timesheet"
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
	businessRepo := postgresql.NewBusinessRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	paymentRepo := postgresql.NewSalaryPaymentRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(db, accountRepo, businessRepo, employeeRepo, jwtService)
	businessSvc := businessService.NewBusinessService(businessRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo)
	timesheetSvc := timesheetService.NewTimesheetService(timesheetRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRepo, employeeRepo)
	paymentSvc := paymentService.NewSalaryPaymentService(paymentRepo)

	router := appHTTP.NewRouter(cfg, jwtService, employeeRepo, appHTTP.Handlers{
		Auth:      appHTTP.NewAuthHandler(authSvc),
		Business:  appHTTP.NewBusinessHandler(businessSvc),
		Employee:  appHTTP.NewEmployeeHandler(employeeSvc),
		Leave:     appHTTP.NewLeaveHandler(leaveSvc),
		Advance:   appHTTP.NewAdvanceHandler(advanceSvc),
		Timesheet: appHTTP.NewTimesheetHandler(timesheetSvc),
		Payroll:   appHTTP.NewPayrollHandler(payrollSvc),
		Payment:   appHTTP.NewSalaryPaymentHandler(paymentSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
