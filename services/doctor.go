package services

import (
	"log"
	"strings"

	db "DoctorZ/config/db"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

/*
* Marketplace listing,only approved and active doctors
* Optional filters on specialization and city come from query params
 */
func SearchDoctors(c *gin.Context) ([]interface{}, error) {
	filter := bson.M{"status": "approved", "isActive": true}
	if specialization := strings.TrimSpace(c.Query("specialization")); specialization != "" {
		filter["specialization"] = primitive.Regex{Pattern: specialization, Options: "i"}
	}
	if clinicId := strings.TrimSpace(c.Query("clinicId")); clinicId != "" {
		filter["clinicId"] = clinicId
	}

	coll := db.OpenCollections(util.DoctorCollection)
	docs, err := db.FindAll(c, coll, filter, nil)
	if err != nil {
		log.Println("Error while searching doctors:", err)
		return nil, err
	}
	for _, d := range docs {
		if doc, ok := d.(map[string]interface{}); ok {
			delete(doc, "password")
		}
	}
	return docs, nil
}
