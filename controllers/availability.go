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

func Availability(router *gin.Engine) {
	availability := router.Group("/api/availability")
	{
		availability.POST("/create", authorization.Authorize(role.Doctor, role.Clinic), CreateTimeSlot)
		availability.GET("/active/:doctorId", FetchActiveSlotDays)
		availability.GET("/:doctorId", FetchAvailability)
		availability.PUT("/slot/:id", authorization.Authorize(role.Doctor, role.Clinic), ToggleSlot)
		availability.PUT("/edit", authorization.Authorize(role.Doctor, role.Clinic), EditTimeSlot)
	}
}

type createTimeSlotRequest struct {
	DoctorId     string              `json:"doctorId" binding:"required"`
	Dates        []string            `json:"dates" binding:"required"`
	WorkingHours models.WorkingHours `json:"workingHours" binding:"required"`
}

/*
* Bind JSON
* And pass to the service
 */
func CreateTimeSlot(c *gin.Context) {
	var req createTimeSlotRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	createdDates, alreadyExistDates, err := services.CreateTimeSlot(c, req.DoctorId, req.Dates, req.WorkingHours)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":           true,
		"message":           "time slots processed",
		"createdDates":      createdDates,
		"alreadyExistDates": alreadyExistDates,
	})
}

/*
* All availability records of one doctor
 */
func FetchAvailability(c *gin.Context) {
	doctorId := c.Param("doctorId")
	days, err := services.FetchAvailability(c, doctorId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(days))
}

type toggleSlotRequest struct {
	Time     string `json:"time" binding:"required"`
	IsActive *bool  `json:"isActive" binding:"required"`
}

/*
* Flip one entry of the day record in the path param
 */
func ToggleSlot(c *gin.Context) {
	dayId := c.Param("id")
	var req toggleSlotRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	slots, err := services.ToggleSlot(c, dayId, req.Time, *req.IsActive)
	if err != nil {
		if err.Error() == util.SLOT_NOT_FOUND || err.Error() == util.RECORD_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(slots))
}

type editTimeSlotRequest struct {
	DoctorId     string              `json:"doctorId" binding:"required"`
	Date         string              `json:"date" binding:"required"`
	WorkingHours models.WorkingHours `json:"workingHours" binding:"required"`
}

/*
* Edit working hours of one date,missing records are a 404
 */
func EditTimeSlot(c *gin.Context) {
	var req editTimeSlotRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	day, err := services.EditTimeSlot(c, req.DoctorId, req.Date, req.WorkingHours)
	if err != nil {
		if err.Error() == util.NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(day))
}

/*
* Days that still have at least one bookable slot
 */
func FetchActiveSlotDays(c *gin.Context) {
	doctorId := c.Param("doctorId")
	days, err := services.ActiveSlotDays(c, doctorId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(days))
}
