package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"tablebook/internal/database"
	"tablebook/internal/middleware"
	"tablebook/internal/modules/access"
	"tablebook/internal/modules/auth"
	"tablebook/internal/modules/hours"
	"tablebook/internal/modules/layout"
	"tablebook/internal/modules/preference"
	"tablebook/internal/modules/reservation"
	"tablebook/internal/modules/restaurant"
	"tablebook/internal/modules/user"
	jwtsvc "tablebook/internal/pkg/jwt"
	"tablebook/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tablebook.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}
	if err := access.SeedDefaults(db); err != nil {
		log.Fatal(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(err)
	}
	sqlxDB := sqlx.NewDb(sqlDB, database.DriverName(dsn))

	userRepo := repository.NewUserRepository(db)
	restaurantRepo := repository.NewRestaurantRepository(db)
	hourRepo := repository.NewOperatingHourRepository(db)
	layoutRepo := repository.NewTableLayoutRepository(db)
	reservationRepo := repository.NewReservationRepository(db)
	preferenceRepo := repository.NewCustomerPreferenceRepository(db)
	permissionRepo := repository.NewPermissionRepository(sqlxDB)

	j := jwtsvc.New(secret, 24*time.Hour)

	accessService := access.NewService(permissionRepo)
	accessHandler := access.NewHandler(accessService)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService, userRepo)

	userHandler := user.NewHandler(userRepo)
	restaurantHandler := restaurant.NewHandler(restaurant.NewService(restaurantRepo, accessService))
	hourHandler := hours.NewHandler(hours.NewService(hourRepo, accessService))
	layoutHandler := layout.NewHandler(layout.NewService(layoutRepo, accessService))
	reservationHandler := reservation.NewHandler(reservation.NewService(reservationRepo, accessService))
	preferenceHandler := preference.NewHandler(preference.NewService(preferenceRepo, accessService))

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	guard := middleware.RequireAccess(accessService)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			accessHandler.RegisterRoutes(protected)
			userHandler.RegisterRoutes(protected, guard)
			restaurantHandler.RegisterRoutes(protected, guard)
			hourHandler.RegisterRoutes(protected, guard)
			layoutHandler.RegisterRoutes(protected, guard)
			reservationHandler.RegisterRoutes(protected, guard)
			preferenceHandler.RegisterRoutes(protected, guard)
		}
	}

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{Addr: addr, Handler: r}

	go func() {
		log.Printf("listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped")
}
