package controllers

import (
	"net/http"

	"DoctorZ/chat"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
)

/*
* Chat needs the hub created in main,so the group takes it as an argument
 */
func Chat(router *gin.Engine, hub *chat.Hub) {
	group := router.Group("/api/chat")
	{
		group.GET("/ws", hub.ServeWS)
		group.GET("/history/:otherId", FetchConversation)
	}
}

/*
* History between the caller and the user in the path
 */
func FetchConversation(c *gin.Context) {
	userId := c.GetString("code")
	otherId := c.Param("otherId")
	messages, err := chat.FetchConversation(c, userId, otherId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(messages))
}
