package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run executes all seeders in dependency order. Each seeder is
// idempotent, so running at every boot is safe.
func Run(db *gorm.DB) {
	if err := SeedRoles(db); err != nil {
		log.Printf("[SEED] roles failed: %v", err)
		return
	}
	if err := SeedProjectRoutes(db); err != nil {
		log.Printf("[SEED] project routes failed: %v", err)
	}
	if err := SeedAdminUser(db); err != nil {
		log.Printf("[SEED] admin user failed: %v", err)
	}
}
