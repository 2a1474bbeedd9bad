package controllers

import (
	"net/http"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func LabBooking(router *gin.Engine) {
	booking := router.Group("/api/labbooking")
	{
		booking.POST("/book", authorization.Authorize(role.Patient), CreateLabBooking)
		booking.GET("/fetchAll", FetchMyLabBookings)
		booking.PATCH("/status/:code", authorization.Authorize(role.Lab), UpdateLabBookingStatus)
	}
}

func CreateLabBooking(c *gin.Context) {
	var input services.LabBookingInput
	if err := c.BindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	booking, err := services.CreateLabBooking(c, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}

func FetchMyLabBookings(c *gin.Context) {
	bookings, err := services.FetchMyLabBookings(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(bookings))
}

type updateLabBookingStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ResultFile string `json:"resultFile"`
}

func UpdateLabBookingStatus(c *gin.Context) {
	code := c.Param("code")
	var req updateLabBookingStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	booking, err := services.UpdateLabBookingStatus(c, code, req.Status, req.ResultFile)
	if err != nil {
		if err.Error() == util.LAB_BOOKING_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}
