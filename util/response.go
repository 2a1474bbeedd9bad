package util

import "github.com/gin-gonic/gin"

/*
* Common response envelopes used by every controller
 */
func SuccessResponse(data interface{}) gin.H {
	return gin.H{
		"success": true,
		"data":    data,
	}
}

func FailedResponse(err error) gin.H {
	return FailedResponseMessage(err.Error())
}

func FailedResponseMessage(message string) gin.H {
	return gin.H{
		"success": false,
		"message": message,
	}
}
