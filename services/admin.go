package services

import (
	"errors"
	"log"
	"time"

	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

var approvableRoles = map[string]bool{
	role.Doctor: true,
	role.Clinic: true,
	role.Lab:    true,
}

/*
* Providers waiting for approval,grouped for the admin dashboard
 */
func FetchPendingApprovals(c *gin.Context) (map[string][]interface{}, error) {
	pending := make(map[string][]interface{})
	for userRole := range approvableRoles {
		docs, err := FetchAllProfiles(c, userRole, bson.M{"status": "pending"})
		if err != nil {
			return nil, err
		}
		pending[userRole] = docs
	}
	return pending, nil
}

/*
* Flip a provider from pending to approved or rejected
* Patients never pass through approval
 */
func SetApprovalStatus(c *gin.Context, userRole string, code string, status string) (string, error) {
	if !approvableRoles[userRole] {
		return "", errors.New(util.INVALID_USER_TO_ACCESS)
	}
	if status != "approved" && status != "rejected" {
		return "", errors.New(util.INVALID_APPROVAL_STATUS)
	}

	coll := db.OpenCollections(role.Collection(userRole))
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	updated, err := db.UpdateOne(c, coll, bson.M{"code": code}, update)
	if err != nil {
		log.Println("Error while setting approval status:", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, cacheKeyForRole(userRole)+code); err != nil {
		log.Println("Error while invalidating profile cache:", err)
	}
	return status, nil
}

/*
* Unblock a user locked out by failed logins
 */
func UnblockUser(c *gin.Context, userRole string, code string) (string, error) {
	coll := db.OpenCollections(role.Collection(userRole))
	update := bson.M{"$set": bson.M{"isBlocked": false, "loginAttempts": 0, "updatedAt": time.Now()}}
	updated, err := db.UpdateOne(c, coll, bson.M{"code": code}, update)
	if err != nil {
		log.Println("Error while unblocking user:", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, cacheKeyForRole(userRole)+code); err != nil {
		log.Println("Error while invalidating profile cache:", err)
	}
	return "unblocked", nil
}
