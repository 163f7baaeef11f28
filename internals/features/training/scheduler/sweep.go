// internals/features/training/scheduler/sweep.go
package scheduler

import (
	"log"
	"strings"
	"time"

	"gorm.io/gorm"

	"sportan_backend/internals/configs"
	"sportan_backend/internals/features/training/service"
)

// StartAssignmentSweep launches the in-process daily sweep that marks overdue
// pending plans as skipped. Gated by ASSIGNMENT_SWEEP_ENABLED so deployments
// that drive the sweep from an external cron (via the system endpoint) can
// leave it off. The sweep itself is a single conditional UPDATE, so an
// external cron and this loop running together do no harm.
func StartAssignmentSweep(db *gorm.DB) {
	enabled := strings.ToLower(configs.GetEnv("ASSIGNMENT_SWEEP_ENABLED", "false"))
	if enabled != "true" && enabled != "1" {
		log.Println("[INFO] assignment sweep scheduler disabled")
		return
	}

	interval := 24 * time.Hour
	if raw := configs.GetEnv("ASSIGNMENT_SWEEP_INTERVAL", ""); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			interval = d
		} else {
			log.Printf("[WARNING] invalid ASSIGNMENT_SWEEP_INTERVAL %q, using 24h", raw)
		}
	}

	go func() {
		log.Printf("[INFO] assignment sweep scheduler started (every %s)", interval)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		runSweep(db)
		for range ticker.C {
			runSweep(db)
		}
	}()
}

func runSweep(db *gorm.DB) {
	n, err := service.UpdateSkippedAssignments(db)
	if err != nil {
		log.Printf("[ERROR] assignment sweep: %v", err)
		return
	}
	if n > 0 {
		log.Printf("[INFO] assignment sweep: %d assignment(s) marked skipped", n)
	}
}
