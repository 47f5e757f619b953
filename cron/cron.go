package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Wisley56/Apontamento-de-Horas/controllers"
	"github.com/Wisley56/Apontamento-de-Horas/holidays"
	"github.com/Wisley56/Apontamento-de-Horas/session"
)

// StartCronJobs initializes and starts the cron scheduler for session cleanup
// and holiday cache warming
func StartCronJobs() {
	fmt.Println("Starting cron job scheduler...")
	c := cron.New()
	// Sweep idle sessions every 10 minutes
	_, err := c.AddFunc("*/10 * * * *", purgeExpiredSessions)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Warm the current-year holiday cache nightly
	_, err = c.AddFunc("0 3 * * *", warmHolidayCache)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session cleanup and holiday cache warming")
}

func purgeExpiredSessions() {
	if purged := session.Default.PurgeExpired(); purged > 0 {
		log.Printf("Purged %d expired session(s), %d remaining", purged, session.Default.Len())
	}
}

// warmHolidayCache precomputes the current year for every state so the first
// lookup of the day hits a warm cache.
func warmHolidayCache() {
	year := time.Now().Year()
	warmed := 0
	for uf := range holidays.StateNames {
		if _, err := controllers.LoadHolidays(year, uf); err != nil {
			log.Printf("Error warming holiday cache for %s: %v", uf, err)
			continue
		}
		warmed++
	}
	fmt.Printf("Holiday cache warmed for %d state(s)\n", warmed)
}
