package routes

import (
	"bond_quotation/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathChatSessions = "/chat/sessions"
	PathSession      = "/:session_id"
)

func addChatRoutes(rg *gin.RouterGroup, chatHandler *handlers.ChatHandler) {
	sessions := rg.Group(PathChatSessions)
	{
		sessions.POST("", chatHandler.StartSession)
		sessions.GET(PathSession, chatHandler.GetSession)
		sessions.DELETE(PathSession, chatHandler.EndSession)
		sessions.POST(PathSession+"/messages", chatHandler.SendMessage)
		sessions.PUT(PathSession+"/draft", chatHandler.ReplaceDraft)
		sessions.POST(PathSession+"/finalize", chatHandler.Finalize)
		sessions.GET(PathSession+"/ws", chatHandler.Stream)
	}
}
