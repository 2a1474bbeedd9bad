package controllers

import (
	"net/http"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

/*
* One route group per profile kind,same shape for all four
 */
func Doctor(router *gin.Engine) {
	profileRoutes(router, "/api/doctor", role.Doctor)
}

func Patient(router *gin.Engine) {
	profileRoutes(router, "/api/patient", role.Patient)
}

func Clinic(router *gin.Engine) {
	profileRoutes(router, "/api/clinic", role.Clinic)
}

func Lab(router *gin.Engine) {
	profileRoutes(router, "/api/lab", role.Lab)
}

func profileRoutes(router *gin.Engine, prefix string, userRole string) {
	group := router.Group(prefix)
	{
		group.GET("/fetch/:code", fetchProfileHandler(userRole))
		group.GET("/fetchAll", authorization.Authorize(role.Admin), fetchAllProfilesHandler(userRole))
		group.PUT("/update/:code", updateProfileHandler(userRole))
		group.DELETE("/delete/:code", deleteProfileHandler(userRole))
	}
}

func fetchProfileHandler(userRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		profile, err := services.FetchProfileByCode(c, userRole, code)
		if err != nil {
			if err.Error() == util.RECORD_NOT_FOUND {
				c.JSON(http.StatusNotFound, util.FailedResponse(err))
				return
			}
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(profile))
	}
}

func fetchAllProfilesHandler(userRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		profiles, err := services.FetchAllProfiles(c, userRole, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(profiles))
	}
}

func updateProfileHandler(userRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		var data map[string]interface{}
		if err := c.BindJSON(&data); err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		msg, err := services.UpdateProfile(c, userRole, code, data)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
	}
}

func deleteProfileHandler(userRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		code := c.Param("code")
		msg, err := services.DeleteProfile(c, userRole, code)
		if err != nil {
			c.JSON(http.StatusBadRequest, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusOK, util.SuccessResponse(msg))
	}
}
