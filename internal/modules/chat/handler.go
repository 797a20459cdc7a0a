package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"kivulounge/internal/domain"
	"kivulounge/internal/pkg/logger"
	"kivulounge/internal/pkg/response"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Cross-origin is handled by the HTTP CORS layer; the upgrade itself
	// accepts any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type Handler struct {
	service *Service
	hub     *Hub
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{service: service, hub: hub}
}

// RegisterRoutes wires the message endpoints onto the optionally
// authenticated group and the staff stream onto the admin group.
func (h *Handler) RegisterRoutes(public, adminGroup *gin.RouterGroup) {
	public.GET("/chat/messages", h.History)
	public.POST("/chat/messages", h.Post)

	adminGroup.GET("/chat/ws", h.Stream)
}

func (h *Handler) Post(c *gin.Context) {
	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	userID := c.GetInt64("user_id")
	fromSupport := c.GetString("role") == string(domain.RoleAdmin)

	msg, err := h.service.Post(c.Request.Context(), userID, fromSupport, req)
	if err != nil {
		if errors.Is(err, ErrGuestIdentityRequired) {
			response.Error(c, http.StatusBadRequest, "MISSING_FIELDS", "Guest name and email are required")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to send message")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"message": msg})
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))

	messages, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load messages")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// Stream upgrades the connection and keeps it registered until the staff
// member disconnects. Messages arrive via Hub.Broadcast; reads are only
// pumped to detect the close.
func (h *Handler) Stream(c *gin.Context) {
	userID := c.GetInt64("user_id")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.ErrorLogger.Errorf("websocket upgrade failed: %v", err)
		return
	}

	h.hub.Register(userID, conn)
	defer h.hub.Unregister(userID)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
