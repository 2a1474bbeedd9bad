package services

import (
	"errors"
	"log"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/models"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

/*
* Labs publish individual tests into the marketplace catalog
 */
func CreateLabTest(c *gin.Context, test models.LabTest) (models.LabTest, error) {
	labId := c.GetString("code")
	if test.Name == "" {
		return test, errors.New("test name cannot be empty")
	}
	if test.Price <= 0 {
		return test, errors.New("test price must be positive")
	}

	code, err := GenerateCode(c, util.LabTestCollection)
	if err != nil {
		log.Println("Error while generating labTest code:", err)
		return test, err
	}
	test.Code = code
	test.LabId = labId
	test.IsActive = true
	test.CreatedAt = time.Now()
	test.UpdatedAt = time.Now()

	coll := db.OpenCollections(util.LabTestCollection)
	if _, err := db.CreateOne(c, coll, test); err != nil {
		log.Println("Error while creating labTest:", err)
		return test, err
	}
	return test, nil
}

/*
* A package bundles existing tests of the same lab at one price
 */
func CreateLabPackage(c *gin.Context, pack models.LabPackage) (models.LabPackage, error) {
	labId := c.GetString("code")
	if pack.Name == "" {
		return pack, errors.New("package name cannot be empty")
	}
	if len(pack.TestCodes) == 0 {
		return pack, errors.New("a package needs at least one test")
	}

	coll := db.OpenCollections(util.LabTestCollection)
	for _, testCode := range pack.TestCodes {
		test := models.LabTest{}
		if err := db.FindOne(c, coll, bson.M{"code": testCode, "labId": labId}, &test); err != nil {
			if err == mongo.ErrNoDocuments {
				return pack, errors.New(util.LAB_TEST_NOT_FOUND)
			}
			return pack, err
		}
	}

	code, err := GenerateCode(c, util.LabPackageCollection)
	if err != nil {
		log.Println("Error while generating labPackage code:", err)
		return pack, err
	}
	pack.Code = code
	pack.LabId = labId
	pack.IsActive = true
	pack.CreatedAt = time.Now()
	pack.UpdatedAt = time.Now()

	packColl := db.OpenCollections(util.LabPackageCollection)
	if _, err := db.CreateOne(c, packColl, pack); err != nil {
		log.Println("Error while creating labPackage:", err)
		return pack, err
	}
	return pack, nil
}

func FetchLabCatalog(c *gin.Context, labId string) (map[string]interface{}, error) {
	testColl := db.OpenCollections(util.LabTestCollection)
	tests, err := db.FindAll(c, testColl, bson.M{"labId": labId, "isActive": true}, nil)
	if err != nil {
		log.Println("Error while fetching lab tests:", err)
		return nil, err
	}
	packColl := db.OpenCollections(util.LabPackageCollection)
	packages, err := db.FindAll(c, packColl, bson.M{"labId": labId, "isActive": true}, nil)
	if err != nil {
		log.Println("Error while fetching lab packages:", err)
		return nil, err
	}
	return map[string]interface{}{
		"tests":    tests,
		"packages": packages,
	}, nil
}

/*
* Labs retire catalog entries instead of deleting them,past bookings
* keep pointing at a real document
 */
func DeactivateLabTest(c *gin.Context, testCode string) (string, error) {
	labId := c.GetString("code")
	coll := db.OpenCollections(util.LabTestCollection)
	filter := bson.M{"code": testCode, "labId": labId}
	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now()}}

	updated, err := db.UpdateOne(c, coll, filter, update)
	if err != nil {
		log.Println("Error while deactivating labTest:", err)
		return "", err
	}
	if updated.MatchedCount == 0 {
		return "", errors.New(util.LAB_TEST_NOT_FOUND)
	}
	return "deactivated", nil
}
