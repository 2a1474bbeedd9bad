package controllers

import (
	"net/http"

	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

/*
* Public marketplace search,no token needed
 */
func DoctorSearch(router *gin.Engine) {
	router.GET("/api/doctors", SearchDoctors)
}

func SearchDoctors(c *gin.Context) {
	doctors, err := services.SearchDoctors(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(doctors))
}
