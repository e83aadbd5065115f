package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/kadro-hq/kadro-backend-go/internal/config"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/account"
	"github.com/kadro-hq/kadro-backend-go/internal/domain/employee"
	"github.com/kadro-hq/kadro-backend-go/internal/handler/http/middleware"
	"github.com/kadro-hq/kadro-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth      AuthHandler
	Business  BusinessHandler
	Employee  EmployeeHandler
	Leave     LeaveHandler
	Advance   AdvanceHandler
	Timesheet TimesheetHandler
	Payroll   PayrollHandler
	Payment   SalaryPaymentHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, employeeRepo employee.EmployeeRepository, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "kadro-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)

			// Requires authentication
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

				r.Get("/me", h.Auth.Me)
				r.Put("/profile", h.Auth.UpdateProfile)

				r.With(middleware.RequireManager).Post("/register-employee", h.Auth.RegisterEmployee)

				// Owner only
				r.Route("/users", func(r chi.Router) {
					r.Use(middleware.RequireOwner)
					r.Get("/", h.Auth.ListAccounts)
					r.Get("/deleted", h.Auth.ListDeletedAccounts)
					r.Delete("/{accountId}", h.Auth.DeactivateAccount)
					r.Post("/{accountId}/restore", h.Auth.RestoreAccount)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/business", func(r chi.Router) {
				r.With(middleware.RequirePermission(account.PermissionBusinessView)).Get("/", h.Business.Get)
				r.With(middleware.RequirePermission(account.PermissionBusinessManage)).Put("/", h.Business.Update)
			})

			// Business-wide advance queue. Managers see the whole business,
			// employees only their own requests.
			r.Get("/advances", h.Advance.ListBusinessAdvances)

			r.Route("/employees", func(r chi.Router) {

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", h.Employee.CreateEmployee)
					r.Get("/", h.Employee.ListEmployees)
					r.Get("/deleted", h.Employee.ListDeletedEmployees)
					r.Get("/statistics", h.Employee.EmployeeStatistics)
					r.Delete("/{employeeId}", h.Employee.DeleteEmployee)
					r.Post("/{employeeId}/restore", h.Employee.RestoreEmployee)
				})

				r.Route("/{employeeId}", func(r chi.Router) {
					r.Use(middleware.EmployeeScope(employeeRepo))

					r.Get("/", h.Employee.GetEmployee)
					r.With(middleware.RequireManager).Put("/", h.Employee.UpdateEmployee)

					r.Route("/leaves", func(r chi.Router) {
						r.Post("/", h.Leave.CreateLeave)
						r.Get("/", h.Leave.ListLeaves)
						r.Get("/statistics", h.Leave.LeaveStatistics)
						r.Get("/{leaveId}", h.Leave.GetLeave)
						r.Put("/{leaveId}", h.Leave.UpdateLeave)
						r.Delete("/{leaveId}", h.Leave.DeleteLeave)
						r.With(middleware.RequirePermission(account.PermissionLeaveDecide)).
							Put("/{leaveId}/approve", h.Leave.DecideLeave)
					})

					r.Route("/advances", func(r chi.Router) {
						r.Post("/", h.Advance.CreateAdvance)
						r.Get("/", h.Advance.ListAdvances)
						r.Get("/statistics", h.Advance.AdvanceStatistics)
						r.Get("/{advanceId}", h.Advance.GetAdvance)
						r.Put("/{advanceId}", h.Advance.UpdateAdvance)
						r.Delete("/{advanceId}", h.Advance.DeleteAdvance)
						r.With(middleware.RequirePermission(account.PermissionAdvanceDecide)).
							Put("/{advanceId}/approve", h.Advance.DecideAdvance)
					})

					r.Route("/timesheets", func(r chi.Router) {
						r.Get("/", h.Timesheet.ListTimesheets)
						r.Get("/statistics", h.Timesheet.TimesheetStatistics)
						r.Get("/{timesheetId}", h.Timesheet.GetTimesheet)
						r.With(middleware.RequirePermission(account.PermissionTimesheetCreate)).
							Post("/", h.Timesheet.CreateTimesheet)
						r.Put("/{timesheetId}", h.Timesheet.UpdateTimesheet)
						r.Delete("/{timesheetId}", h.Timesheet.DeleteTimesheet)
					})

					r.Route("/payrolls", func(r chi.Router) {
						r.Get("/", h.Payroll.ListPayrolls)
						r.Get("/statistics", h.Payroll.PayrollStatistics)
						r.Get("/{payrollId}", h.Payroll.GetPayroll)
						r.Get("/{payrollId}/payslip", h.Payroll.PayslipPayroll)

						// Manager only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireManager, middleware.RequirePermission(account.PermissionPayrollManage))
							r.Post("/", h.Payroll.CreatePayroll)
							r.Put("/{payrollId}", h.Payroll.UpdatePayroll)
							r.Put("/{payrollId}/pay", h.Payroll.PayPayroll)
							r.Delete("/{payrollId}", h.Payroll.DeletePayroll)
						})
					})

					r.Route("/salary-payments", func(r chi.Router) {
						r.Get("/", h.Payment.ListPayments)
						r.Get("/statistics", h.Payment.PaymentStatistics)
						r.Get("/{paymentId}", h.Payment.GetPayment)

						// Manager only
						r.Group(func(r chi.Router) {
							r.Use(middleware.RequireManager, middleware.RequirePermission(account.PermissionPaymentManage))
							r.Post("/", h.Payment.CreatePayment)
							r.Put("/{paymentId}", h.Payment.UpdatePayment)
							r.Delete("/{paymentId}", h.Payment.DeletePayment)
						})
					})
				})
			})
		})
	})
	return r
}
