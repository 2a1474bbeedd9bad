package controllers

import (
	"net/http"
	"strings"

	authorization "DoctorZ/config/authorization"
	"DoctorZ/role"
	"DoctorZ/services"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

func Admin(router *gin.Engine) {
	admin := router.Group("/api/admin")
	admin.Use(authorization.Authorize(role.Admin))
	{
		admin.GET("/pending", FetchPendingApprovals)
		admin.PATCH("/approval/:role/:code", SetApprovalStatus)
		admin.PATCH("/unblock/:role/:code", UnblockUser)
	}
}

func FetchPendingApprovals(c *gin.Context) {
	pending, err := services.FetchPendingApprovals(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(pending))
}

type approvalRequest struct {
	Status string `json:"status" binding:"required"`
}

/*
* Approve or reject a pending provider
 */
func SetApprovalStatus(c *gin.Context) {
	userRole := strings.ToUpper(c.Param("role"))
	code := c.Param("code")
	var req approvalRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	status, err := services.SetApprovalStatus(c, userRole, code, req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(gin.H{"code": code, "status": status}))
}

func UnblockUser(c *gin.Context) {
	userRole := strings.ToUpper(c.Param("role"))
	code := c.Param("code")
	msg, err := services.UnblockUser(c, userRole, code)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
