package main

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tuan204-dev/ttcs-be/internal/app"
	"github.com/tuan204-dev/ttcs-be/internal/config"
	"github.com/tuan204-dev/ttcs-be/internal/controllers"
	"github.com/tuan204-dev/ttcs-be/internal/metrics"
	"github.com/tuan204-dev/ttcs-be/internal/middleware"
	"github.com/tuan204-dev/ttcs-be/internal/models"
	"github.com/tuan204-dev/ttcs-be/internal/repositories"
	"github.com/tuan204-dev/ttcs-be/internal/routes"
	"github.com/tuan204-dev/ttcs-be/internal/services"
	"github.com/tuan204-dev/ttcs-be/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	utils.SetLogLevel(cfg.LogLevel)

	application, err := app.NewApp(cfg)
	if err != nil {
		utils.Logger.Fatal("Failed to initialize application:", err)
	}
	defer application.Close()

	if err := application.InitSchema(context.Background()); err != nil {
		utils.Logger.Fatal("Failed to initialize database schema:", err)
	}

	// Repositories
	workerRepo := repositories.NewWorkerRepository(application.DB)
	recruiterRepo := repositories.NewRecruiterRepository(application.DB)
	jobRepo := repositories.NewJobRepository(application.DB)
	recruitingRepo := repositories.NewRecruitingRepository(application.DB)
	bookmarkRepo := repositories.NewBookmarkRepository(application.DB)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(application.DB, utils.HashToken)
	verifyTokenRepo := repositories.NewVerifyTokenRepository(application.DB)

	// Services
	tokenService := services.NewTokenService(cfg, refreshTokenRepo)
	mailService := services.NewMailService(cfg)
	workerAuthService := services.NewWorkerAuthService(cfg, workerRepo, verifyTokenRepo, tokenService, mailService)
	recruiterAuthService := services.NewRecruiterAuthService(cfg, recruiterRepo, verifyTokenRepo, tokenService, mailService)
	jobService := services.NewJobService(jobRepo, recruiterRepo)
	recruitingService := services.NewRecruitingService(recruitingRepo, jobRepo, workerRepo, recruiterRepo)
	bookmarkService := services.NewBookmarkService(bookmarkRepo, jobRepo, recruiterRepo)

	// Controllers
	healthController := controllers.NewHealthController(application)
	workerAuthController := controllers.NewWorkerAuthController(workerAuthService)
	recruiterAuthController := controllers.NewRecruiterAuthController(recruiterAuthService)
	jobController := controllers.NewJobController(jobService)
	recruitingController := controllers.NewRecruitingController(recruitingService)
	bookmarkController := controllers.NewBookmarkController(bookmarkService)

	workerVerifier := middleware.Verifier{Role: models.RoleWorker, Secret: cfg.WorkerAccessSecret}
	recruiterVerifier := middleware.Verifier{Role: models.RoleRecruiter, Secret: cfg.RecruiterAccessSecret}

	// Router setup
	router := mux.NewRouter()
	router.Use(metrics.Middleware)

	// Public routes
	router.HandleFunc(routes.Health, healthController.HealthCheck).Methods(http.MethodGet)
	router.Handle(routes.Metrics, metrics.Handler()).Methods(http.MethodGet)

	// The public catalog needs no token. Registered before the
	// recruiter subrouter so /api/job/worker wins over /api/job/{jobId}.
	router.HandleFunc(routes.PublicJobList, jobController.ListPublic).Methods(http.MethodGet)
	router.HandleFunc(routes.PublicJobDetail, jobController.GetPublic).Methods(http.MethodGet)

	router.HandleFunc(routes.WorkerSendVerifyEmail, workerAuthController.SendVerifyEmail).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerRegister, workerAuthController.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerLogin, workerAuthController.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerRefresh, workerAuthController.Refresh).Methods(http.MethodPost)
	router.HandleFunc(routes.WorkerLogout, workerAuthController.Logout).Methods(http.MethodPost)

	router.HandleFunc(routes.RecruiterSendVerifyEmail, recruiterAuthController.SendVerifyEmail).Methods(http.MethodPost)
	router.HandleFunc(routes.RecruiterRegister, recruiterAuthController.Register).Methods(http.MethodPost)
	router.HandleFunc(routes.RecruiterLogin, recruiterAuthController.Login).Methods(http.MethodPost)
	router.HandleFunc(routes.RecruiterRefresh, recruiterAuthController.Refresh).Methods(http.MethodPost)
	router.HandleFunc(routes.RecruiterLogout, recruiterAuthController.Logout).Methods(http.MethodPost)

	// Secured routes for workers
	workerSecured := router.NewRoute().Subrouter()
	workerSecured.Use(middleware.Auth(workerVerifier))
	workerSecured.HandleFunc(routes.WorkerMe, workerAuthController.GetInfo).Methods(http.MethodGet)
	workerSecured.HandleFunc(routes.WorkerMe, workerAuthController.UpdateInfo).Methods(http.MethodPut)
	workerSecured.HandleFunc(routes.JobApply, recruitingController.Apply).Methods(http.MethodPost)
	workerSecured.HandleFunc(routes.RecruitingList, recruitingController.ListForWorker).Methods(http.MethodGet)
	workerSecured.HandleFunc(routes.RecruitingWorkerMessage, recruitingController.SendMessage).Methods(http.MethodPost)
	workerSecured.HandleFunc(routes.BookmarkAdd, bookmarkController.Add).Methods(http.MethodPost)
	workerSecured.HandleFunc(routes.BookmarkRemove, bookmarkController.Remove).Methods(http.MethodDelete)
	workerSecured.HandleFunc(routes.BookmarkList, bookmarkController.List).Methods(http.MethodGet)

	// Secured routes for recruiters
	recruiterSecured := router.NewRoute().Subrouter()
	recruiterSecured.Use(middleware.Auth(recruiterVerifier))
	recruiterSecured.HandleFunc(routes.RecruiterMe, recruiterAuthController.GetInfo).Methods(http.MethodGet)
	recruiterSecured.HandleFunc(routes.JobCreate, jobController.Create).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.JobEdit, jobController.Edit).Methods(http.MethodPut)
	recruiterSecured.HandleFunc(routes.JobList, jobController.ListOwn).Methods(http.MethodGet)
	recruiterSecured.HandleFunc(routes.JobDetail, jobController.GetOwn).Methods(http.MethodGet)
	recruiterSecured.HandleFunc(routes.JobPublish, jobController.Publish).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.JobPause, jobController.Pause).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.JobClose, jobController.Close).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.JobApplicants, recruitingController.ListForJob).Methods(http.MethodGet)
	recruiterSecured.HandleFunc(routes.RecruitingAdvance, recruitingController.Advance).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.RecruitingReject, recruitingController.Reject).Methods(http.MethodPost)
	recruiterSecured.HandleFunc(routes.RecruitingRecruiterMessage, recruitingController.SendMessage).Methods(http.MethodPost)

	// Secured routes for either party
	eitherSecured := router.NewRoute().Subrouter()
	eitherSecured.Use(middleware.Auth(workerVerifier, recruiterVerifier))
	eitherSecured.HandleFunc(routes.RecruitingThread, recruitingController.GetThread).Methods(http.MethodGet)

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl, cfg.FrontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("Server failed to start:", err)
	}
}
