package migrations

import (
	"context"
	"log"

	db "DoctorZ/config/db"
)

/*
* One availability record per doctor per date
* Duplicate historic records must be cleaned by hand before this runs
 */
func AddAvailabilityUniqueIndex() {
	ctx := context.Background()
	if err := db.EnsureIndexes(ctx); err != nil {
		log.Println("Error while creating availability index:", err)
		return
	}
	log.Println("Created unique index on (doctorId, date)")
}
