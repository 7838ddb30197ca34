package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	config "github.com/centraladventures/trips_backend/configs"
	"github.com/centraladventures/trips_backend/database"
	"github.com/centraladventures/trips_backend/models"
	"github.com/centraladventures/trips_backend/websocket"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GetChatHistory(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	offset := (page - 1) * pageSize

	var messages []models.ChatMessage
	err := database.DB.Preload("Sender").
		Order("created_at asc").
		Limit(pageSize).
		Offset(offset).
		Find(&messages).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch chat history"})
	}

	return c.JSON(fiber.Map{"messages": messages})
}

// ServeChatWs upgrades a member into the shared club chat room. The first
// frame must be an auth message carrying a valid JWT.
func ServeChatWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := userIDFromClaims(claims)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var msg websocket.MessagePayload
		if err := c.ReadJSON(&msg); err != nil {
			if websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("Chat socket closed for client %s: %v", userID, err)
			} else {
				log.Printf("Chat socket read error for client %s: %v", userID, err)
			}
			break
		}

		if msg.Content == "" {
			continue
		}

		dbMessage := models.ChatMessage{
			SenderID: userID,
			Body:     msg.Content,
		}
		if err := database.DB.Create(&dbMessage).Error; err != nil {
			log.Printf("Failed to save chat message from client %s: %v", userID, err)
			_ = c.WriteJSON(fiber.Map{"error": "Failed to save message"})
			continue
		}
		websocket.Broadcast <- &dbMessage
	}
}

// userIDFromClaims reads the user_id claim without trusting it to be present:
// a validly signed token minted elsewhere may not carry it.
func userIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, errors.New("missing user_id claim")
	}
	return uuid.Parse(raw)
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
