package dares

import (
	"log"
	"net/http"

	"github.com/ajitashwath/dare-exchange/database"
	"github.com/ajitashwath/dare-exchange/models"
	"github.com/ajitashwath/dare-exchange/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// DareWebSocket streams live counter updates for a specific dare
func DareWebSocket(c *gin.Context) {
	slug := c.Param("slug")

	var count int64
	database.DB.Model(&models.Dare{}).Where("slug = ? AND is_approved = ?", slug, true).Count(&count)
	if count == 0 {
		c.JSON(404, gin.H{"error": ErrDareNotFound})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	realtime.RegisterClient(slug, conn)
	defer func() {
		realtime.UnregisterClient(slug, conn)
		conn.Close()
	}()

	for {
		_, _, err := conn.ReadMessage()
		if err != nil {
			break
		}
	}
}
