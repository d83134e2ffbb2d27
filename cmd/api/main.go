package main

import (
	"fmt"
	"net/http"

	"github.com/wealthzoneai/hrm-core-go/internal/config"
	"github.com/wealthzoneai/hrm-core-go/internal/domain/leave"
	appHTTP "github.com/wealthzoneai/hrm-core-go/internal/handler/http"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/cron"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/database"
	"github.com/wealthzoneai/hrm-core-go/internal/pkg/jwt"
	"github.com/wealthzoneai/hrm-core-go/internal/repository/postgresql"
	attendanceService "github.com/wealthzoneai/hrm-core-go/internal/service/attendance"
	leaveService "github.com/wealthzoneai/hrm-core-go/internal/service/leave"
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

	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	workflow := leave.Workflow{TeamLeadGate: cfg.Leave.TeamLeadGate}
	leaveSvc := leaveService.NewWorkflowService(leaveRequestRepo, workflow)
	attendanceSvc := attendanceService.NewService(punchRepo)

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg, jwtService, leaveHandler, attendanceHandler)

	scheduler := cron.NewScheduler()
	cron.NewLeaveJobs(leaveSvc, cfg.Leave.CompletionSweepInterval).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
