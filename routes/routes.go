package routes

import (
	"DoctorZ/chat"
	authorization "DoctorZ/config/authorization"
	"DoctorZ/controllers"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine, hub *chat.Hub) {

	//public
	controllers.Auth(r)
	controllers.DoctorSearch(r)
	controllers.LabCatalogPublic(r)

	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.Admin(r)
	controllers.Doctor(r)
	controllers.Patient(r)
	controllers.Clinic(r)
	controllers.Lab(r)
	controllers.Availability(r)
	controllers.Booking(r)
	controllers.MedicalRecord(r)
	controllers.Prescription(r)
	controllers.LabCatalog(r)
	controllers.LabBooking(r)
	controllers.Chat(r, hub)
}
