package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	"gameku_backend/internals/features/users/auth/service"
)

// StartTokenCleanup prunes expired blacklist rows on an interval until
// stop is closed.
func StartTokenCleanup(db *gorm.DB, interval time.Duration, stop <-chan struct{}) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := service.CleanupExpiredTokens(db)
				if err != nil {
					log.Printf("[TokenCleanup] %v", err)
					continue
				}
				if n > 0 {
					log.Printf("[TokenCleanup] removed %d expired tokens", n)
				}
			case <-stop:
				return
			}
		}
	}()
}
