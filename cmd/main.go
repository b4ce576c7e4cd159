package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/legend1349/USYDSTRATA2025/internal/app"
	"github.com/legend1349/USYDSTRATA2025/internal/config"
	"github.com/legend1349/USYDSTRATA2025/internal/controllers"
	"github.com/legend1349/USYDSTRATA2025/internal/jobs"
	"github.com/legend1349/USYDSTRATA2025/internal/middleware"
	"github.com/legend1349/USYDSTRATA2025/internal/routes"
	"github.com/legend1349/USYDSTRATA2025/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)

	// 1) Config
	cfg := config.LoadConfig()

	// 2) Core application (DB pool, blob store, services)
	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize app: ", err)
	}
	defer application.Close()

	// 3) Controllers
	healthCtrl := controllers.NewHealthController()
	authCtrl := controllers.NewAuthController(application.AuthService)
	rollCtrl := controllers.NewStrataRollController(application.StrataRollService)
	maintCtrl := controllers.NewMaintenanceController(application.MaintenanceService)
	docCtrl := controllers.NewDocumentController(application.DocumentService)
	finCtrl := controllers.NewFinanceController(application.FinanceService)

	// 4) Background jobs
	reporter := jobs.NewOverdueLevyReporter(application.LevyRepo)
	if err := reporter.Start(); err != nil {
		utils.Logger.Fatal("Failed to start overdue levy reporter: ", err)
	}
	defer reporter.Stop()

	// 5) Router. Public routes first; everything registered on the
	// guarded subrouter requires a session.
	router := mux.NewRouter()
	router.HandleFunc(routes.Health, healthCtrl.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.AuthRegister, authCtrl.RegisterHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authCtrl.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogout, authCtrl.LogoutHandler).Methods(http.MethodPost)

	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.SessionGuard(cfg.SessionSecret, routes.LoginPage))

	protected.HandleFunc(routes.Me, authCtrl.MeHandler).Methods(http.MethodGet)

	protected.HandleFunc(routes.Owners, rollCtrl.ListOwnersHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.Owners, rollCtrl.CreateOwnerHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.OwnerByID, rollCtrl.GetOwnerHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.OwnerByID, rollCtrl.UpdateOwnerHandler).Methods(http.MethodPatch)
	protected.HandleFunc(routes.OwnerByID, rollCtrl.DeleteOwnerHandler).Methods(http.MethodDelete)

	protected.HandleFunc(routes.MaintenanceRequests, maintCtrl.ListRequestsHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.MaintenanceRequests, maintCtrl.CreateRequestHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.MaintenanceRequestByID, maintCtrl.GetRequestHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.MaintenanceRequestByID, maintCtrl.UpdateRequestHandler).Methods(http.MethodPatch)
	protected.HandleFunc(routes.MaintenanceRequestByID, maintCtrl.DeleteRequestHandler).Methods(http.MethodDelete)
	protected.HandleFunc(routes.MaintenanceRequestStatus, maintCtrl.UpdateStatusHandler).Methods(http.MethodPatch)

	protected.HandleFunc(routes.Documents, docCtrl.ListDocumentsHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.Documents, docCtrl.UploadDocumentHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.DocumentByID, docCtrl.GetDocumentHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.DocumentByID, docCtrl.UpdateDocumentHandler).Methods(http.MethodPatch)
	protected.HandleFunc(routes.DocumentByID, docCtrl.DeleteDocumentHandler).Methods(http.MethodDelete)

	protected.HandleFunc(routes.Levies, finCtrl.ListLeviesHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.Levies, finCtrl.CreateLevyHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.LevyByID, finCtrl.GetLevyHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.LevyByID, finCtrl.UpdateLevyHandler).Methods(http.MethodPatch)
	protected.HandleFunc(routes.LevyByID, finCtrl.DeleteLevyHandler).Methods(http.MethodDelete)

	protected.HandleFunc(routes.BudgetItems, finCtrl.ListBudgetItemsHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.BudgetItems, finCtrl.CreateBudgetItemHandler).Methods(http.MethodPost)
	protected.HandleFunc(routes.BudgetItemByID, finCtrl.GetBudgetItemHandler).Methods(http.MethodGet)
	protected.HandleFunc(routes.BudgetItemByID, finCtrl.UpdateBudgetItemHandler).Methods(http.MethodPatch)
	protected.HandleFunc(routes.BudgetItemByID, finCtrl.DeleteBudgetItemHandler).Methods(http.MethodDelete)
	protected.HandleFunc(routes.FinanceSummary, finCtrl.FinanceSummaryHandler).Methods(http.MethodGet)

	// 6) CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on :%s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, c.Handler(router)); err != nil {
		utils.Logger.Fatal("Server error:", err)
	}
}
