package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fields a profile owner may never change about themselves.
var protectedProfileFields = map[string]bool{
	"code":          true,
	"password":      true,
	"status":        true,
	"loginAttempts": true,
	"isBlocked":     true,
	"createdAt":     true,
	"_id":           true,
}

/*
* Cache aside fetch of one profile document
 */
func FetchProfileByCode(c *gin.Context, userRole string, code string) (map[string]interface{}, error) {
	key := cacheKeyForRole(userRole) + code
	profile := make(map[string]interface{})
	if redis.GetCache(c, key, &profile) {
		return profile, nil
	}

	coll := db.OpenCollections(role.Collection(userRole))
	if err := db.FindOne(c, coll, bson.M{"code": code}, &profile); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(util.RECORD_NOT_FOUND)
		}
		log.Println("Error while fetching profile:", err)
		return nil, err
	}
	delete(profile, "password")
	if err := redis.SetCache(c, key, profile); err != nil {
		log.Println("Error while caching profile:", err)
	}
	return profile, nil
}

func FetchAllProfiles(c *gin.Context, userRole string, filter bson.M) ([]interface{}, error) {
	if filter == nil {
		filter = bson.M{}
	}
	coll := db.OpenCollections(role.Collection(userRole))
	docs, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error while fetching profiles:", err)
		return nil, err
	}
	for _, d := range docs {
		if doc, ok := d.(map[string]interface{}); ok {
			delete(doc, "password")
		}
	}
	return docs, nil
}

/*
* Owners update their own document,admins anyone's
 */
func UpdateProfile(c *gin.Context, userRole string, code string, data map[string]interface{}) (string, error) {
	callerCode := c.GetString("code")
	callerRole := c.GetString("role")
	if callerRole != role.Admin && callerCode != code {
		return "", errors.New(util.INVALID_USER_TO_ACCESS)
	}

	set := bson.M{"updatedAt": time.Now()}
	for field, value := range data {
		if !protectedProfileFields[field] {
			set[field] = value
		}
	}

	coll := db.OpenCollections(role.Collection(userRole))
	updated, err := db.UpdateOne(c, coll, bson.M{"code": code}, bson.M{"$set": set})
	if err != nil {
		log.Println("Error while updating profile:", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}
	if err := redis.DeleteCache(c, cacheKeyForRole(userRole)+code); err != nil {
		log.Println("Error while invalidating profile cache:", err)
	}
	return "updated", nil
}

/*
* Soft delete,the profile and its login entry are both deactivated
 */
func DeleteProfile(c *gin.Context, userRole string, code string) (string, error) {
	callerCode := c.GetString("code")
	callerRole := c.GetString("role")
	if callerRole != role.Admin && callerCode != code {
		return "", errors.New(util.INVALID_USER_TO_ACCESS)
	}

	coll := db.OpenCollections(role.Collection(userRole))
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}
	updated, err := db.UpdateOne(c, coll, bson.M{"code": code}, update)
	if err != nil {
		log.Println("Error while deactivating profile:", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(util.RECORD_NOT_FOUND)
	}

	loginColl := db.OpenCollections(util.LoginCollection)
	if _, err := db.DeleteOne(c, loginColl, bson.M{"code": code}); err != nil {
		log.Println("Error while removing login entry:", err)
	}
	if err := redis.DeleteCache(c, cacheKeyForRole(userRole)+code); err != nil {
		log.Println("Error while invalidating profile cache:", err)
	}
	return fmt.Sprintf("User %s deleted successfully", code), nil
}
