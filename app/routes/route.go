package routes

import (
	"github.com/gorilla/mux"
	"github.com/raflidev/go-fixmart/app/configs"
	"github.com/raflidev/go-fixmart/app/handlers"
	"github.com/raflidev/go-fixmart/app/middlewares"
	"github.com/raflidev/go-fixmart/app/repositories"
	"github.com/raflidev/go-fixmart/app/services"
	"github.com/raflidev/go-fixmart/app/utils/cache"
	"github.com/redis/go-redis/v9"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

// NewRouter wires repositories, services and handlers onto a mux router.
// The StatsService is returned as well so the snapshot job can share the
// exact instance the HTTP layer uses.
func NewRouter(db *gorm.DB, rdb *redis.Client) (*mux.Router, *services.StatsService) {
	renderer := render.New()
	c := cache.New(rdb)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	serviceRepo := repositories.NewServiceRepository(db)
	serviceCategoryRepo := repositories.NewServiceCategoryRepository(db)
	orderRepo := repositories.NewOrderRequestRepository(db)
	repairRepo := repositories.NewRepairRequestRepository(db)
	statsRepo := repositories.NewStatsRepository(db)
	userRepo := repositories.NewUserRepository(db)
	bannerRepo := repositories.NewBannerRepository(db)
	ratingRepo := repositories.NewRatingRepository(db)

	storage := services.NewDiskStorage(configs.LoadENV.StorageDir, configs.LoadENV.StorageBaseURL)
	mailer := services.NewMailer(services.MailConfig{
		Host:     configs.LoadENV.EmailHost,
		Port:     configs.LoadENV.EmailPort,
		Username: configs.LoadENV.EmailUsername,
		Password: configs.LoadENV.EmailPassword,
		From:     configs.LoadENV.EmailFrom,
	})

	searchService := services.NewSearchService(c, productRepo, categoryRepo, serviceRepo, serviceCategoryRepo, orderRepo, repairRepo)
	viewService := services.NewViewService(c)
	statsService := services.NewStatsService(statsRepo, orderRepo, repairRepo)
	catalogService := services.NewCatalogService(productRepo, categoryRepo, serviceRepo, serviceCategoryRepo, storage)
	requestService := services.NewRequestService(orderRepo, repairRepo, productRepo, serviceRepo, storage)
	otpService := services.NewOTPService(c, mailer)

	searchHandler := handlers.NewSearchHandler(searchService, renderer)
	statsHandler := handlers.NewStatsHandler(statsService, renderer)
	productHandler := handlers.NewProductHandler(productRepo, catalogService, viewService, renderer)
	categoryHandler := handlers.NewCategoryHandler(categoryRepo, catalogService, renderer)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, serviceCategoryRepo, catalogService, viewService, renderer)
	orderHandler := handlers.NewOrderHandler(orderRepo, requestService, renderer)
	repairHandler := handlers.NewRepairHandler(repairRepo, requestService, renderer)
	bannerHandler := handlers.NewBannerHandler(bannerRepo, renderer)
	ratingHandler := handlers.NewRatingHandler(ratingRepo, productRepo, renderer)
	viewHandler := handlers.NewViewHandler(viewService, renderer)
	authHandler := handlers.NewAuthHandler(userRepo, otpService, renderer)

	router := mux.NewRouter()
	router.Use(middlewares.RecoverMiddleware)
	router.Use(middlewares.LoggingMiddleware)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public, storefront-facing routes count visits.
	public := api.NewRoute().Subrouter()
	public.Use(middlewares.VisitCountMiddleware(statsService))

	public.HandleFunc("/search/{type}", searchHandler.Search).Methods("GET")

	public.HandleFunc("/products", productHandler.List).Methods("GET")
	public.HandleFunc("/products/featured", productHandler.Featured).Methods("GET")
	public.HandleFunc("/products/{slug}", productHandler.GetBySlug).Methods("GET")
	public.HandleFunc("/products/{id}/ratings", ratingHandler.ListForProduct).Methods("GET")
	public.HandleFunc("/ratings", ratingHandler.Create).Methods("POST")

	public.HandleFunc("/categories", categoryHandler.List).Methods("GET")
	public.HandleFunc("/categories/{slug}", categoryHandler.GetBySlug).Methods("GET")

	public.HandleFunc("/services", serviceHandler.List).Methods("GET")
	public.HandleFunc("/services/featured", serviceHandler.Featured).Methods("GET")
	public.HandleFunc("/services/{slug}", serviceHandler.GetBySlug).Methods("GET")
	public.HandleFunc("/service-categories", serviceHandler.ListCategories).Methods("GET")

	public.HandleFunc("/banners", bannerHandler.List).Methods("GET")
	public.HandleFunc("/views/{type}/{id}", viewHandler.Get).Methods("GET")

	// Customer intake.
	public.HandleFunc("/orders", orderHandler.Create).Methods("POST")
	public.HandleFunc("/repairs", repairHandler.Create).Methods("POST")

	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods("POST")
	api.HandleFunc("/auth/forgot-password", authHandler.ForgotPassword).Methods("POST")
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middlewares.AdminOnlyMiddleware)

	admin.HandleFunc("/products", productHandler.Create).Methods("POST")
	admin.HandleFunc("/products/{id}", productHandler.Update).Methods("PUT")
	admin.HandleFunc("/products/{id}/quantity", productHandler.UpdateQuantity).Methods("PATCH")
	admin.HandleFunc("/products/{id}", productHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/categories", categoryHandler.Create).Methods("POST")
	admin.HandleFunc("/categories/{id}", categoryHandler.Update).Methods("PUT")
	admin.HandleFunc("/categories/{id}", categoryHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/services", serviceHandler.Create).Methods("POST")
	admin.HandleFunc("/services/{id}", serviceHandler.Update).Methods("PUT")
	admin.HandleFunc("/services/{id}", serviceHandler.Delete).Methods("DELETE")
	admin.HandleFunc("/service-categories", serviceHandler.CreateCategory).Methods("POST")
	admin.HandleFunc("/service-categories/{id}", serviceHandler.UpdateCategory).Methods("PUT")
	admin.HandleFunc("/service-categories/{id}", serviceHandler.DeleteCategory).Methods("DELETE")

	admin.HandleFunc("/orders", orderHandler.List).Methods("GET")
	admin.HandleFunc("/orders/{id}", orderHandler.Get).Methods("GET")
	admin.HandleFunc("/orders/{id}/status", orderHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/orders/{id}/hide", orderHandler.Hide).Methods("PATCH")

	admin.HandleFunc("/repairs", repairHandler.List).Methods("GET")
	admin.HandleFunc("/repairs/{id}", repairHandler.Get).Methods("GET")
	admin.HandleFunc("/repairs/{id}/status", repairHandler.UpdateStatus).Methods("PATCH")
	admin.HandleFunc("/repairs/{id}/hide", repairHandler.Hide).Methods("PATCH")
	admin.HandleFunc("/repairs/{id}", repairHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/banners", bannerHandler.Create).Methods("POST")
	admin.HandleFunc("/banners/{id}", bannerHandler.Update).Methods("PUT")
	admin.HandleFunc("/banners/{id}", bannerHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/ratings/{id}", ratingHandler.Delete).Methods("DELETE")

	admin.HandleFunc("/stats", statsHandler.Create).Methods("POST")
	admin.HandleFunc("/stats", statsHandler.GetAll).Methods("GET")
	admin.HandleFunc("/stats/current", statsHandler.GetCurrent).Methods("GET")
	admin.HandleFunc("/stats/month", statsHandler.GetByMonth).Methods("GET")
	admin.HandleFunc("/stats/by-date", statsHandler.GetByDate).Methods("GET")
	admin.HandleFunc("/stats/visit", statsHandler.CountVisit).Methods("POST")
	admin.HandleFunc("/stats", statsHandler.Update).Methods("PUT")

	return router, statsService
}
