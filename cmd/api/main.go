package main

import (
	"fmt"
	"net/http"

	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/config"
	appHTTP "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/handler/http"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/cron"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/database"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/pkg/jwt"
	"github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/repository/postgresql"
	announcementService "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/announcement"
	attendanceService "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/attendance"
	authService "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/auth"
	reportService "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/report"
	userService "github.com/PiolaEvania/PKL-EAbsensi-Backend/internal/service/user"
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

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, cfg.Geofence, loc)
	userSvc := userService.NewUserService(userRepo, attendanceSvc, loc)
	authSvc := authService.NewAuthService(userRepo, JWTService)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, loc)
	reportSvc := reportService.NewReportService(userRepo, attendanceRepo, loc)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(userRepo, attendanceSvc, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		userHandler,
		attendanceHandler,
		announcementHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
