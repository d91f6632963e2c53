package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ZargesGmbH/dynamaker-qfs-elfsquad/internal/adapter/http/handlers"
)

const (
	PathRender   = "/render"
	PathWebhooks = "/webhooks"
)

func addRenderRoutes(rg *gin.RouterGroup, triggerHandler *handlers.TriggerHandler, callbackHandler *handlers.CallbackHandler) {
	render := rg.Group(PathRender)
	{
		// Manual dialog and direct API triggers.
		render.POST("/jobs", triggerHandler.TriggerRender)
		// Asynchronous result callback from QFS.
		render.POST("/callback", callbackHandler.HandleCallback)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		// Topic-wrapped quotation events (configurationadded, revisionmade).
		webhooks.POST("/elfsquad", triggerHandler.HandleWebhook)
	}
}
