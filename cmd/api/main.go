package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/medicore/clinic-api/internal/config"
	"github.com/medicore/clinic-api/internal/handler"
	adminHandler "github.com/medicore/clinic-api/internal/handler/admin"
	appointmentHandler "github.com/medicore/clinic-api/internal/handler/appointment"
	departmentHandler "github.com/medicore/clinic-api/internal/handler/department"
	doctorHandler "github.com/medicore/clinic-api/internal/handler/doctor"
	medicalRecordHandler "github.com/medicore/clinic-api/internal/handler/medicalrecord"
	patientHandler "github.com/medicore/clinic-api/internal/handler/patient"
	specialtyHandler "github.com/medicore/clinic-api/internal/handler/specialty"
	"github.com/medicore/clinic-api/internal/repository/sqlite"
	"github.com/medicore/clinic-api/internal/router"
	adminService "github.com/medicore/clinic-api/internal/service/admin"
	appointmentService "github.com/medicore/clinic-api/internal/service/appointment"
	availabilityService "github.com/medicore/clinic-api/internal/service/availability"
	departmentService "github.com/medicore/clinic-api/internal/service/department"
	doctorService "github.com/medicore/clinic-api/internal/service/doctor"
	medicalRecordService "github.com/medicore/clinic-api/internal/service/medicalrecord"
	patientService "github.com/medicore/clinic-api/internal/service/patient"
	specialtyService "github.com/medicore/clinic-api/internal/service/specialty"
	userService "github.com/medicore/clinic-api/internal/service/user"
	"github.com/medicore/clinic-api/pkg/logger"
	"github.com/medicore/clinic-api/pkg/security"
)

func main() {
	logger.Setup(logger.InfoLevel)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := sqlite.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	patientRepo := sqlite.NewPatientRepository(db)
	doctorRepo := sqlite.NewDoctorRepository(db)
	adminRepo := sqlite.NewAdminRepository(db)
	appointmentRepo := sqlite.NewAppointmentRepository(db)
	recordRepo := sqlite.NewMedicalRecordRepository(db)
	availabilityRepo := sqlite.NewAvailabilityRepository(db)
	specialtyRepo := sqlite.NewSpecialtyRepository(db)
	departmentRepo := sqlite.NewDepartmentRepository(db)
	userRepo := sqlite.NewUserRepository(db)

	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	specialtySvc := specialtyService.NewService(specialtyRepo)
	departmentSvc := departmentService.NewService(departmentRepo)
	patientSvc := patientService.NewService(patientRepo, hasher)
	doctorSvc := doctorService.NewService(doctorRepo, specialtySvc, hasher)
	adminSvc := adminService.NewService(adminRepo, hasher)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	recordSvc := medicalRecordService.NewService(recordRepo, patientRepo)
	availabilitySvc := availabilityService.NewService(availabilityRepo)
	userSvc := userService.NewService(userRepo)

	h := handler.NewHandler(db)

	routerConfig := router.DefaultConfig()
	if cfg.Server.TimeoutSeconds > 0 {
		routerConfig.Timeout.Duration = time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	}

	r := router.NewRouter(
		h,
		routerConfig,
		patientHandler.NewHandler(patientSvc, appointmentSvc, recordSvc),
		doctorHandler.NewHandler(doctorSvc, availabilitySvc, appointmentSvc),
		adminHandler.NewHandler(adminSvc, userSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		medicalRecordHandler.NewHandler(recordSvc),
		specialtyHandler.NewHandler(specialtySvc),
		departmentHandler.NewHandler(departmentSvc),
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
