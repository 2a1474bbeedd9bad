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

func LabCatalog(router *gin.Engine) {
	catalog := router.Group("/api/labtest")
	{
		catalog.POST("/create", authorization.Authorize(role.Lab), CreateLabTest)
		catalog.POST("/package/create", authorization.Authorize(role.Lab), CreateLabPackage)
		catalog.DELETE("/delete/:code", authorization.Authorize(role.Lab), DeactivateLabTest)
	}
}

/*
* Public catalog view per lab,no token needed
 */
func LabCatalogPublic(router *gin.Engine) {
	router.GET("/api/labtest/catalog/:labId", FetchLabCatalog)
}

func CreateLabTest(c *gin.Context) {
	var test models.LabTest
	if err := c.BindJSON(&test); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateLabTest(c, test)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func CreateLabPackage(c *gin.Context) {
	var pack models.LabPackage
	if err := c.BindJSON(&pack); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	created, err := services.CreateLabPackage(c, pack)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(created))
}

func FetchLabCatalog(c *gin.Context) {
	labId := c.Param("labId")
	catalog, err := services.FetchLabCatalog(c, labId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(catalog))
}

func DeactivateLabTest(c *gin.Context) {
	code := c.Param("code")
	msg, err := services.DeactivateLabTest(c, code)
	if err != nil {
		if err.Error() == util.LAB_TEST_NOT_FOUND {
			c.JSON(http.StatusNotFound, util.FailedResponse(err))
			return
		}
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
