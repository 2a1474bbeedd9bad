package jobs

import (
	"context"
	"log"
	"os"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

/*
* Create the first admin account from env when none exists
* Skipped entirely when ADMIN_EMAIL or ADMIN_PASSWORD are not set
 */
func SeedDefaultAdmin() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return
	}
	ctx := context.Background()

	adminColl := db.OpenCollections(util.AdminCollection)
	count, err := adminColl.CountDocuments(ctx, bson.M{})
	if err != nil {
		log.Println("Error while checking admin collection:", err)
		return
	}
	if count > 0 {
		return
	}

	code, err := services.GenerateCode(ctx, util.AdminCollection)
	if err != nil {
		log.Println("Error while generating admin code:", err)
		return
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("Error while hashing admin password:", err)
		return
	}

	loginColl := db.OpenCollections(util.LoginCollection)
	_, err = db.CreateOne(ctx, loginColl, bson.M{
		"code":     code,
		"email":    email,
		"phoneNo":  "",
		"role":     role.Admin,
		"password": string(hashed),
	})
	if err != nil {
		log.Println("Error while creating admin login entry:", err)
		return
	}

	_, err = db.CreateOne(ctx, adminColl, bson.M{
		"code":          code,
		"name":          "Administrator",
		"mail":          email,
		"status":        "approved",
		"loginAttempts": 0,
		"isBlocked":     false,
		"isActive":      true,
		"createdAt":     time.Now(),
		"updatedAt":     time.Now(),
	})
	if err != nil {
		log.Println("Error while creating admin profile:", err)
		return
	}
	log.Println("Seeded default admin", code)
}
