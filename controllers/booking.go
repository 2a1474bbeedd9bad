package controllers

import (
	"net/http"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func Booking(router *gin.Engine) {
	booking := router.Group("/api/booking")
	{
		booking.POST("/book", authorization.Authorize(role.Patient), CreateBooking)
		booking.GET("/fetch/:code", authorization.Authorize(role.Patient, role.Doctor, role.Admin), FetchBookingByCode)
		booking.GET("/fetchAll", FetchMyBookings)
		booking.PATCH("/status/:code", authorization.Authorize(role.Doctor, role.Admin), UpdateBookingStatus)
	}
}

/*
* Multipart form: a data blob,an emr blob and optional file attachments
* Attachments are saved first,their paths travel as opaque strings
 */
func CreateBooking(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	input, emr, err := services.ParseBookingForm(c.PostForm("data"), c.PostForm("emr"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	attachments, err := services.SaveAttachments(c, form.File["attachments"])
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	booking, err := services.CreateBooking(c, input, emr, attachments)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}

/*
* Get the code from params and pass to the service
 */
func FetchBookingByCode(c *gin.Context) {
	code := c.Param("code")
	booking, err := services.FetchBookingByCode(c, code)
	if err != nil {
		if err.Error() == util.BOOKING_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}

func FetchMyBookings(c *gin.Context) {
	bookings, err := services.FetchMyBookings(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(bookings))
}

type updateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func UpdateBookingStatus(c *gin.Context) {
	code := c.Param("code")
	var req updateBookingStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	booking, err := services.UpdateBookingStatus(c, code, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(booking))
}
