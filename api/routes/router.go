package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/civicworks/civicreport-backend/api/controllers"
	"github.com/civicworks/civicreport-backend/api/middleware"
	"github.com/civicworks/civicreport-backend/internal/auth"
	"github.com/civicworks/civicreport-backend/internal/categories"
	"github.com/civicworks/civicreport-backend/internal/employees"
	"github.com/civicworks/civicreport-backend/internal/reports"
	"github.com/civicworks/civicreport-backend/internal/users"
	"github.com/civicworks/civicreport-backend/pkg/config"
	"github.com/civicworks/civicreport-backend/pkg/db"
	"github.com/civicworks/civicreport-backend/pkg/enums"
	"github.com/civicworks/civicreport-backend/pkg/logger"
	"github.com/civicworks/civicreport-backend/pkg/metrics"
)

// RouterParams bundles everything the HTTP surface depends on.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	DB          db.Pinger
	HTTPMetrics *metrics.HTTPMetrics

	AuthService       auth.Service
	RegisterService   auth.RegisterService
	UsersService      users.Service
	ReportsService    reports.Service
	EmployeesService  employees.Service
	CategoriesService categories.Service
}

// NewRouter assembles the full route table.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.HTTPMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, p.DB, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/login", controllers.Login(p.AuthService, logg))
	r.Post("/users", controllers.RegisterUser(p.RegisterService, logg))
	r.Get("/categories", controllers.ListCategories(p.CategoriesService, logg))

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/reports", controllers.ListReports(p.ReportsService, logg))
		r.Post("/reports", controllers.CreateReport(p.ReportsService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

			r.Get("/users", controllers.ListUsers(p.UsersService, logg))
			r.Put("/reports/{reportId}/status", controllers.UpdateReportStatus(p.ReportsService, logg))
			r.Put("/reports/{reportId}/assign", controllers.AssignReport(p.ReportsService, logg))
			r.Put("/reports/{reportId}/unassign", controllers.UnassignReport(p.ReportsService, logg))
			r.Get("/employees", controllers.ListEmployees(p.EmployeesService, logg))
			r.Post("/employees", controllers.CreateEmployee(p.EmployeesService, logg))
		})
	})

	return r
}
