package controllers

import (
	"net/http"
	"strings"

	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func Auth(router *gin.Engine) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/register/:role", Register)
		auth.POST("/login", Login)
	}
}

/*
* Bind JSON
* And pass to the service with the requested role
 */
func Register(c *gin.Context) {
	userRole := strings.ToUpper(c.Param("role"))
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	code, err := services.Register(c, userRole, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"code": code}))
}

/*
* Bind the credentials and pass to the service
 */
func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	result, err := services.Login(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(result))
}
