package services

import (
	"log"
	"time"

	"github.com/ahmed1mohammd/Attendee-system/app/models"
	"github.com/ahmed1mohammd/Attendee-system/app/store"
)

// StartScheduler starts the background task scheduler. The is_paid_current
// flag on students means "paid for today's session", so it is cleared at
// every day rollover.
func StartScheduler(st store.Store) {
	go func() {
		log.Println("Scheduler started...")
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		lastDay := time.Now().Format(models.DateLayout)
		for range ticker.C {
			day := time.Now().Format(models.DateLayout)
			if day == lastDay {
				continue
			}
			lastDay = day

			log.Printf("Day rollover [%s]: resetting paid flags...", day)
			if err := st.ResetPaidFlags(); err != nil {
				log.Printf("Error resetting paid flags: %v", err)
			}
		}
	}()
}
