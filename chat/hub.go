package chat

import (
	"log"
	"net/http"
	"time"

	db "DoctorZ/config/db"
	"DoctorZ/models"
	"DoctorZ/util"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Hub struct {
	registry *Registry
	upgrader websocket.Upgrader
}

type incomingMessage struct {
	ReceiverId string `json:"receiverId"`
	Text       string `json:"text"`
}

func NewHub(registry *Registry) *Hub {
	return &Hub{
		registry: registry,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

/*
* Upgrade the request,register the session and run the read loop
* Each message is persisted first,then relayed if the receiver is online
 */
func (h *Hub) ServeWS(c *gin.Context) {
	userId := c.GetString("code")
	if userId == "" {
		c.JSON(http.StatusUnauthorized, util.FailedResponseMessage("missing user identity"))
		return
	}
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("Error while upgrading websocket:", err)
		return
	}
	h.registry.Add(userId, conn)
	defer func() {
		h.registry.Remove(userId, conn)
		conn.Close()
	}()

	for {
		var in incomingMessage
		if err := conn.ReadJSON(&in); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Println("Websocket closed unexpectedly:", err)
			}
			return
		}
		if in.ReceiverId == "" || in.Text == "" {
			continue
		}
		message := models.ChatMessage{
			SenderId:   userId,
			ReceiverId: in.ReceiverId,
			Text:       in.Text,
			SentAt:     time.Now(),
		}
		h.relay(c, message)
	}
}

func (h *Hub) relay(c *gin.Context, message models.ChatMessage) {
	if online, err := h.registry.Send(message.ReceiverId, message); err != nil {
		log.Println("Error while relaying message:", err)
	} else if online {
		message.Delivered = true
	}

	coll := db.OpenCollections(util.ChatMessageCollection)
	if _, err := db.CreateOne(c, coll, message); err != nil {
		log.Println("Error while persisting chat message:", err)
	}
}

/*
* Conversation history between two users,oldest first
 */
func FetchConversation(c *gin.Context, a string, b string) ([]models.ChatMessage, error) {
	coll := db.OpenCollections(util.ChatMessageCollection)
	filter := bson.M{
		"$or": []bson.M{
			{"senderId": a, "receiverId": b},
			{"senderId": b, "receiverId": a},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "sentAt", Value: 1}})
	cursor, err := coll.Find(c, filter, opts)
	if err != nil {
		log.Println("Error while fetching conversation:", err)
		return nil, err
	}
	defer cursor.Close(c)

	messages := []models.ChatMessage{}
	if err := cursor.All(c, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
