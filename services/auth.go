package services

import (
	"errors"
	"log"
	"time"

	authorization "DoctorZ/config/authorization"
	db "DoctorZ/config/db"
	redis "DoctorZ/config/redis"
	"DoctorZ/role"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const maxLoginAttempts = 5

/*
* Check that email or phoneNo or code came in,along with a password
 */
func validateLoginInput(data map[string]interface{}) error {
	_, emailExists := data["email"]
	_, phoneExists := data["phoneNo"]
	_, codeExists := data["code"]

	if !emailExists && !phoneExists && !codeExists {
		return errors.New(util.PLEASE_PROVIDE_EMAIL_OR_PHONE_OR_CODE)
	}
	if err := util.GetTrimmedString(data, "password"); err != nil {
		log.Println("error from getTrimmedString for password:", err)
		return errors.New(util.PASSWORD_NOT_PROVIDED)
	}
	if emailExists {
		if err := util.GetTrimmedString(data, "email"); err != nil {
			return errors.New(util.EMAIL_NOT_PROVIDED)
		}
	}
	if phoneExists {
		if err := util.GetTrimmedString(data, "phoneNo"); err != nil {
			return errors.New(util.PHONE_NUMBER_NOT_PROVIDED)
		}
	}
	if codeExists {
		if err := util.GetTrimmedString(data, "code"); err != nil {
			return errors.New(util.CODE_NOT_PROVIDED)
		}
	}
	return nil
}

/*
* Filter over the LOGIN lookup collection
 */
func buildLoginFilter(data map[string]interface{}) bson.M {
	filter := bson.M{}
	if v, ok := data["email"].(string); ok && v != "" {
		filter["email"] = v
	}
	if v, ok := data["phoneNo"].(string); ok && v != "" {
		filter["phoneNo"] = v
	}
	if v, ok := data["code"].(string); ok && v != "" {
		filter["code"] = v
	}
	return filter
}

func fetchLoginEntry(c *gin.Context, filter bson.M) (map[string]interface{}, error) {
	coll := db.OpenCollections(util.LoginCollection)
	entry := make(map[string]interface{})
	if err := db.FindOne(c, coll, filter, &entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errors.New(util.USER_NOT_FOUND)
		}
		return nil, err
	}
	return entry, nil
}

func fetchProfile(c *gin.Context, userRole string, code string) (map[string]interface{}, error) {
	coll := db.OpenCollections(role.Collection(userRole))
	profile := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"code": code}, &profile); err != nil {
		return nil, errors.New(util.USER_NOT_FOUND)
	}
	return profile, nil
}

func recordFailedAttempt(c *gin.Context, userRole string, code string, attempts int) {
	coll := db.OpenCollections(role.Collection(userRole))
	set := bson.M{"loginAttempts": attempts, "updatedAt": time.Now()}
	if attempts >= maxLoginAttempts {
		set["isBlocked"] = true
	}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, bson.M{"$set": set}); err != nil {
		log.Println("Error while recording failed login attempt:", err)
	}
}

func resetLoginAttempts(c *gin.Context, userRole string, code string) {
	coll := db.OpenCollections(role.Collection(userRole))
	update := bson.M{"$set": bson.M{"loginAttempts": 0, "updatedAt": time.Now()}}
	if _, err := db.UpdateOne(c, coll, bson.M{"code": code}, update); err != nil {
		log.Println("Error while resetting login attempts:", err)
	}
}

/*
* Find the login entry,check block and approval state,compare passwords
* Wrong password bumps loginAttempts and blocks after too many
* On success issue a token carrying code and role
 */
func Login(c *gin.Context, data map[string]interface{}) (map[string]interface{}, error) {
	if err := validateLoginInput(data); err != nil {
		return nil, err
	}
	entry, err := fetchLoginEntry(c, buildLoginFilter(data))
	if err != nil {
		return nil, err
	}
	code, _ := entry["code"].(string)
	userRole, _ := entry["role"].(string)

	profile, err := fetchProfile(c, userRole, code)
	if err != nil {
		return nil, err
	}
	if blocked, _ := profile["isBlocked"].(bool); blocked {
		return nil, errors.New(util.USER_IS_BLOCKED)
	}
	if status, ok := profile["status"].(string); ok && status != "approved" {
		return nil, errors.New(util.USER_NOT_APPROVED_YET)
	}

	hashed, _ := entry["password"].(string)
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(data["password"].(string))); err != nil {
		attempts := 1
		if raw, ok := profile["loginAttempts"].(int32); ok {
			attempts = int(raw) + 1
		}
		recordFailedAttempt(c, userRole, code, attempts)
		return nil, errors.New(util.INVALID_CREDENTIALS)
	}
	resetLoginAttempts(c, userRole, code)

	name, _ := profile["name"].(string)
	token, err := authorization.GenerateToken(code, userRole, name)
	if err != nil {
		log.Println("Error while generating token:", err)
		return nil, err
	}
	return map[string]interface{}{
		"token": token,
		"code":  code,
		"role":  userRole,
		"name":  name,
	}, nil
}

/*
* Shared by every register path
* Reject duplicate email or phone,hash the password,write the LOGIN entry
 */
func registerLoginEntry(c *gin.Context, code string, userRole string, email string, phoneNo string, password string) error {
	coll := db.OpenCollections(util.LoginCollection)

	existing := make(map[string]interface{})
	if err := db.FindOne(c, coll, bson.M{"email": email}, &existing); err == nil {
		return errors.New(util.EMAIL_ALREADY_REGISTERED)
	}
	if err := db.FindOne(c, coll, bson.M{"phoneNo": phoneNo}, &existing); err == nil {
		return errors.New(util.PHONE_ALREADY_REGISTERED)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	entry := bson.M{
		"code":     code,
		"email":    email,
		"phoneNo":  phoneNo,
		"role":     userRole,
		"password": string(hashed),
	}
	if _, err := db.CreateOne(c, coll, entry); err != nil {
		log.Println("Error while creating login entry:", err)
		return err
	}
	return nil
}

/*
* Patients are active right away,providers start pending until an
* admin approves them
 */
func Register(c *gin.Context, userRole string, data map[string]interface{}) (string, error) {
	for _, field := range []string{"name", "email", "phoneNo", "password"} {
		if err := util.GetTrimmedString(data, field); err != nil {
			return "", err
		}
	}
	collection := role.Collection(userRole)
	if collection == "" || userRole == role.Admin {
		return "", errors.New(util.INVALID_USER_TO_ACCESS)
	}

	code, err := GenerateCode(c, collection)
	if err != nil {
		log.Println("Error while generating code:", err)
		return "", err
	}

	email := data["email"].(string)
	phoneNo := data["phoneNo"].(string)
	if err := registerLoginEntry(c, code, userRole, email, phoneNo, data["password"].(string)); err != nil {
		return "", err
	}

	status := "approved"
	if userRole != role.Patient {
		status = "pending"
	}
	profile := bson.M{
		"code":          code,
		"name":          data["name"],
		"mail":          email,
		"phoneNo":       phoneNo,
		"status":        status,
		"loginAttempts": 0,
		"isBlocked":     false,
		"isActive":      true,
		"createdAt":     time.Now(),
		"updatedAt":     time.Now(),
	}
	for field, value := range data {
		switch field {
		case "name", "email", "phoneNo", "password":
		default:
			profile[field] = value
		}
	}

	coll := db.OpenCollections(collection)
	if _, err := db.CreateOne(c, coll, profile); err != nil {
		log.Println("Error while creating profile:", err)
		return "", err
	}
	if err := redis.SetCache(c, cacheKeyForRole(userRole)+code, profile); err != nil {
		log.Println("Error while caching new profile:", err)
	}
	return code, nil
}

func cacheKeyForRole(userRole string) string {
	switch userRole {
	case role.Doctor:
		return util.DoctorKey
	case role.Patient:
		return util.PatientKey
	case role.Clinic:
		return util.ClinicKey
	case role.Lab:
		return util.LabKey
	}
	return "user:"
}
