package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"skybook/internal/config"
	"skybook/internal/database"
	"skybook/internal/middleware"
	"skybook/internal/modules/airline"
	"skybook/internal/modules/airport"
	"skybook/internal/modules/auth"
	"skybook/internal/modules/booking"
	"skybook/internal/modules/flight"
	"skybook/internal/modules/notification"
	"skybook/internal/modules/passenger"
	"skybook/internal/modules/promotion"
	"skybook/internal/modules/seat"
	"skybook/internal/modules/terminal"
	jwtsvc "skybook/internal/pkg/jwt"
	"skybook/internal/pkg/mailer"
	"skybook/internal/pkg/midtrans"
	"skybook/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	airportRepo := repository.NewAirportRepository(db)
	terminalRepo := repository.NewTerminalRepository(db)
	airlineRepo := repository.NewAirlineRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	flightRepo := repository.NewFlightRepository(db)
	seatRepo := repository.NewSeatRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	passengerRepo := repository.NewPassengerRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	var mail *mailer.Mailer
	if cfg.SMTP.Host != "" {
		mail = mailer.New(cfg.SMTP)
	}
	gateway := midtrans.NewClient(cfg.Midtrans, nil)

	notificationService := notification.NewService(notificationRepo, userRepo, mailerOrNil(mail))
	notificationHandler := notification.NewHandler(notificationService)

	authService := auth.NewService(userRepo, authMailerOrNil(mail), j, notificationService, cfg.FrontendURL+"/reset-password")
	authHandler := auth.NewHandler(authService)

	airportService := airport.NewService(airportRepo)
	airportHandler := airport.NewHandler(airportService)

	terminalService := terminal.NewService(terminalRepo, airportRepo)
	terminalHandler := terminal.NewHandler(terminalService)

	airlineService := airline.NewService(airlineRepo)
	airlineHandler := airline.NewHandler(airlineService)

	promotionService := promotion.NewService(promotionRepo, flightRepo, notificationService)
	promotionHandler := promotion.NewHandler(promotionService)

	flightService := flight.NewService(flightRepo, seatRepo, airlineRepo, terminalRepo, promotionRepo)
	flightHandler := flight.NewHandler(flightService)

	seatService := seat.NewService(seatRepo)
	seatHandler := seat.NewHandler(seatService)

	bookingService := booking.NewService(bookingRepo, flightRepo, passengerRepo, userRepo, gateway, notificationService)
	bookingHandler := booking.NewHandler(bookingService)

	passengerService := passenger.NewService(passengerRepo, bookingRepo)
	passengerHandler := passenger.NewHandler(passengerService)

	scheduler, err := promotion.StartScheduler(promotionService, cfg.ReconcileEvery)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			log.Printf("scheduler shutdown: %v", err)
		}
	}()

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		flightHandler.RegisterRoutes(v1)
		seatHandler.RegisterRoutes(v1)
		airportHandler.RegisterRoutes(v1)
		terminalHandler.RegisterRoutes(v1)
		airlineHandler.RegisterRoutes(v1)

		// logged-in users
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			passengerHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			seatHandler.RegisterProtectedRoutes(protected)
		}

		// admins
		admin := v1.Group("/admin")
		admin.Use(middleware.JWTAuth(j), middleware.AdminOnly())
		{
			promotionHandler.RegisterRoutes(admin)
			flightHandler.RegisterAdminRoutes(admin)
			seatHandler.RegisterAdminRoutes(admin)
			airportHandler.RegisterAdminRoutes(admin)
			terminalHandler.RegisterAdminRoutes(admin)
			airlineHandler.RegisterAdminRoutes(admin)
			bookingHandler.RegisterAdminRoutes(admin)
			passengerHandler.RegisterAdminRoutes(admin)
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
}

// mailerOrNil keeps the notification service's Mailer interface nil when
// SMTP is not configured; a typed nil would dodge the service's nil check.
func mailerOrNil(m *mailer.Mailer) notification.Mailer {
	if m == nil {
		return nil
	}
	return m
}

func authMailerOrNil(m *mailer.Mailer) auth.Mailer {
	if m == nil {
		return nil
	}
	return m
}
