package handlers

import (
	"net/http"

	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	*BaseHandler
	messageService services.MessageService
	authMiddleware gin.HandlerFunc
}

func NewMessageHandler(base *BaseHandler, messageService services.MessageService, authMiddleware gin.HandlerFunc) *MessageHandler {
	return &MessageHandler{
		BaseHandler:    base,
		messageService: messageService,
		authMiddleware: authMiddleware,
	}
}

func (h *MessageHandler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	messages.Use(h.authMiddleware)
	{
		messages.POST("/send", h.SendMessage)
		messages.GET("/inbox", h.GetInbox)
		messages.GET("/unread", h.GetUnreadMessages)
		messages.POST("/delete/:id", h.DeleteMessage)
		messages.GET("/view/:id", h.ViewMessage)
		messages.POST("/read/:id", h.MarkAsRead)
	}
}

func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req dto.SendMessageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	message, err := h.messageService.SendMessage(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}

func (h *MessageHandler) GetInbox(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	messages, err := h.messageService.GetInbox(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) GetUnreadMessages(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	messages, err := h.messageService.GetUnreadMessages(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *MessageHandler) DeleteMessage(c *gin.Context) {
	messageID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.DeleteMessage(h.GetDB(c), messageID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Message deleted successfully"})
}

func (h *MessageHandler) ViewMessage(c *gin.Context) {
	messageID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	message, err := h.messageService.ViewMessage(h.GetDB(c), messageID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, message)
}

func (h *MessageHandler) MarkAsRead(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	messageID, ok := RequireParam(c, "id")
	if !ok {
		return
	}

	if err := h.messageService.MarkAsRead(h.GetDB(c), messageID, userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageOnlyResponse{Message: "Message marked as read"})
}
