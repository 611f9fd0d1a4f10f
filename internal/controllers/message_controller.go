package controllers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/franciscosanchezn/linkup-api/internal/chat"
	"github.com/franciscosanchezn/linkup-api/internal/middleware"
	"github.com/franciscosanchezn/linkup-api/internal/models"
	"github.com/franciscosanchezn/linkup-api/internal/services"
)

type MessageController struct {
	messageService services.MessageService
	hub            chat.Hub
}

func NewMessageController(messageService services.MessageService, hub chat.Hub) *MessageController {
	if hub == nil {
		hub = chat.NopHub{}
	}
	return &MessageController{messageService: messageService, hub: hub}
}

type sendMessageRequest struct {
	ReceiverEmail string `json:"receiverEmail"`
	Body          string `json:"body"`
}

// SendMessage godoc
// @Summary Send a chat message
// @Tags chat
// @Accept json
// @Produce json
// @Param message body sendMessageRequest true "Message"
// @Success 201 {object} models.Message
// @Security BearerAuth
// @Router /messages [post]
func (mc *MessageController) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ReceiverEmail == "" {
		c.JSON(http.StatusBadRequest, models.NewMessage("Invalid request body"))
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	msg, err := mc.messageService.SendMessage(c.Request.Context(), models.Message{
		SenderEmail:   identity.Email(),
		ReceiverEmail: req.ReceiverEmail,
		Body:          req.Body,
	})
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// ListConversation godoc
// @Summary Conversation with another member
// @Tags chat
// @Produce json
// @Param with query string true "Other member's email"
// @Success 200 {array} models.Message
// @Security BearerAuth
// @Router /messages [get]
func (mc *MessageController) ListConversation(c *gin.Context) {
	peer := c.Query("with")
	if peer == "" {
		c.JSON(http.StatusBadRequest, models.NewMessage("Query parameter 'with' is required"))
		return
	}

	identity, _ := middleware.CurrentIdentity(c)
	messages, err := mc.messageService.Conversation(c.Request.Context(), identity.Email(), peer)
	if err != nil {
		storageFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// Stream godoc
// @Summary Stream incoming chat messages
// @Description Server-sent events carrying messages addressed to the caller, until the client disconnects. Delivery is best effort.
// @Tags chat
// @Produce text/event-stream
// @Success 200 {object} models.Message "event: message, data: models.Message"
// @Failure 401 {object} models.MessageResponse
// @Security BearerAuth
// @Router /messages/stream [get]
func (mc *MessageController) Stream(c *gin.Context) {
	identity, _ := middleware.CurrentIdentity(c)
	inbox, cancel := mc.hub.Subscribe(c.Request.Context(), identity.Email())
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-inbox:
			if !ok {
				return false
			}
			c.SSEvent("message", msg)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
