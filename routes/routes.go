package routes

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected clients map with mutex for thread safety
var clients = make(map[*websocket.Conn]bool)
var broadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var mutex = &sync.Mutex{}
var validate = validator.New()

type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

func SetupRoutes(app *fiber.App) {

	wsHandler := adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("Error upgrading:", err)
			return
		}
		defer conn.Close()

		mutex.Lock()
		clients[conn] = true
		mutex.Unlock()
		log.Println("Client connected:", conn.RemoteAddr())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Printf("WebSocket read error: %v", err)
				}
				mutex.Lock()
				delete(clients, conn)
				mutex.Unlock()
				log.Println("Client disconnected:", conn.RemoteAddr())
				break
			}
		}
	})

	// Handle broadcasting catalog events to all clients
	go func() {
		for message := range broadcast {
			mutex.Lock()
			for client := range clients {
				err := client.WriteMessage(websocket.TextMessage, message)
				if err != nil {
					log.Printf("WebSocket write error: %v", err)
					client.Close()
					delete(clients, client)
				}
			}
			mutex.Unlock()
		}
	}()

	// Mount WebSocket endpoint
	app.Get("/ws", wsHandler)

	api := app.Group("/api")

	admin := api.Group("/admin")
	admin.Post("/", createAdmin)
	admin.Put("/", updateAdmin)
	admin.Get("/", getAdmin)

	api.Post("/login", loginHandler)

	// Admin article routes
	articles := api.Group("/articles")
	articles.Post("/bulk-delete", bulkDeleteArticles)
	articles.Post("/", createArticle)
	articles.Get("/", listArticles)
	articles.Get("/:id", getArticle)
	articles.Put("/:id", updateArticle)
	articles.Delete("/:id", deleteArticle)

	// Category routes
	categories := api.Group("/categories")
	categories.Post("/bulk-delete", bulkDeleteCategories)
	categories.Post("/", createCategory)
	categories.Get("/", listCategories)
	categories.Get("/:id", getCategory)
	categories.Put("/:id", updateCategory)
	categories.Delete("/:id", deleteCategory)

	// Public catalog routes
	public := api.Group("/catalog")
	public.Get("/autocomplete", autocomplete)
	public.Get("/", browseCatalog)
	public.Get("/:id", getCatalogArticle)

	api.Get("/dashboard", getDashboard)
}

// notifyCatalogChanged pushes a change event to connected websocket
// clients. Events are dropped when the broadcast buffer is full.
func notifyCatalogChanged(entity, action string, id uuid.UUID) {
	event, err := json.Marshal(fiber.Map{
		"entity": entity,
		"action": action,
		"id":     id,
	})
	if err != nil {
		return
	}
	select {
	case broadcast <- event:
	default:
	}
}
