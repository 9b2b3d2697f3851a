package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gauthamtours/travels-backend/utils/mail"
)

// RegisterMailPreviewRoutes exposes sandboxed emails for inspection. With a
// live SMTP transport there is no sandbox and every lookup is a 404.
func RegisterMailPreviewRoutes(router *gin.Engine, mailer *mail.Mailer) {
	router.GET("/api/mail-preview/:id", func(c *gin.Context) {
		sandbox := mailer.Sandbox()
		if sandbox == nil {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Mail previews are only available without SMTP credentials",
			})
			return
		}

		msg, ok := sandbox.Message(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Preview not found",
			})
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(msg.HTML))
	})
}
