package controllers

import (
	"net/http"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func MedicalRecord(router *gin.Engine) {
	record := router.Group("/api/medicalRecord")
	{
		record.GET("/fetch/:code", authorization.Authorize(role.Patient, role.Doctor, role.Admin), FetchMedicalRecordByCode)
		record.GET("/patient/:patientId", authorization.Authorize(role.Patient, role.Doctor, role.Admin), FetchMedicalRecordsForPatient)
		record.PATCH("/update/:code", authorization.Authorize(role.Doctor), UpdateMedicalRecord)
	}
}

func FetchMedicalRecordByCode(c *gin.Context) {
	code := c.Param("code")
	record, err := services.FetchMedicalRecordByCode(c, code)
	if err != nil {
		if err.Error() == util.MEDICAL_RECORD_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(record))
}

func FetchMedicalRecordsForPatient(c *gin.Context) {
	patientId := c.Param("patientId")
	records, err := services.FetchMedicalRecordsForPatient(c, patientId)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(records))
}

/*
* Bind the fields to amend and pass to the service
 */
func UpdateMedicalRecord(c *gin.Context) {
	code := c.Param("code")
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	record, err := services.UpdateMedicalRecord(c, code, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(record))
}
