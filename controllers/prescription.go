package controllers

import (
	"net/http"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/models"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func Prescription(router *gin.Engine) {
	prescription := router.Group("/api/prescription")
	{
		prescription.POST("/create/:bookingCode", authorization.Authorize(role.Doctor), CreatePrescription)
		prescription.GET("/fetch/:code", authorization.Authorize(role.Patient, role.Doctor, role.Admin), FetchPrescriptionByCode)
		prescription.GET("/patient/:patientId", authorization.Authorize(role.Patient, role.Doctor, role.Admin), FetchPrescriptionsForPatient)
	}
}

type createPrescriptionRequest struct {
	Items []models.PrescriptionItem `json:"items" binding:"required"`
	Notes string                    `json:"notes"`
}

/*
* Bind items and pass to the service with the booking from the path
 */
func CreatePrescription(c *gin.Context) {
	bookingCode := c.Param("bookingCode")
	var req createPrescriptionRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	prescription, err := services.CreatePrescription(c, bookingCode, req.Items, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prescription))
}

func FetchPrescriptionByCode(c *gin.Context) {
	code := c.Param("code")
	prescription, err := services.FetchPrescriptionByCode(c, code)
	if err != nil {
		if err.Error() == util.PRESCRIPTION_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prescription))
}

func FetchPrescriptionsForPatient(c *gin.Context) {
	patientId := c.Param("patientId")
	prescriptions, err := services.FetchPrescriptionsForPatient(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prescriptions))
}
