package main

import (
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/pocketcg/battlesim/internal/config"
	"github.com/pocketcg/battlesim/internal/game"
)

var (
	configPath = flag.String("config", "config.yaml", "path to configuration file")
	addr       = flag.String("addr", "", "listen address (overrides config)")
	deckFile   = flag.String("decks", "", "path to deck file (overrides config)")
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for demo
	},
}

// WSMessage is the JSON envelope for both directions.
type WSMessage struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// RunMatchRequest is the payload of a "run_match" message.
type RunMatchRequest struct {
	DeckA    string `json:"deck_a"`
	DeckB    string `json:"deck_b"`
	Seed     int64  `json:"seed"`
	MaxTurns int    `json:"max_turns"`
}

// MatchResult is the payload of the final "match_result" message.
type MatchResult struct {
	MatchID     string `json:"match_id"`
	Winner      string `json:"winner,omitempty"`
	Turns       int    `json:"turns"`
	PrizesLeftA int    `json:"prizes_left_a"`
	PrizesLeftB int    `json:"prizes_left_b"`
}

type Client struct {
	conn *websocket.Conn
	send chan []byte
}

type Hub struct {
	mu         sync.RWMutex
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	decks      map[string]*game.Deck
}

func newHub(decks map[string]*game.Deck) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		decks:      decks,
	}
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()
			log.Printf("Client connected")

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()
			log.Printf("Client disconnected")
		}
	}
}

func (h *Hub) handleMessage(client *Client, msg WSMessage) {
	switch msg.Type {
	case "list_decks":
		names := make([]string, 0, len(h.decks))
		for name := range h.decks {
			names = append(names, name)
		}
		client.sendJSON(WSMessage{Type: "deck_list", Data: names})

	case "run_match":
		raw, err := json.Marshal(msg.Data)
		if err != nil {
			client.sendJSON(WSMessage{Type: "error", Data: err.Error()})
			return
		}
		var req RunMatchRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			client.sendJSON(WSMessage{Type: "error", Data: err.Error()})
			return
		}
		h.runMatch(client, req)

	default:
		client.sendJSON(WSMessage{Type: "error", Data: "unknown message type: " + msg.Type})
	}
}

func (h *Hub) runMatch(client *Client, req RunMatchRequest) {
	deckA, ok := h.decks[req.DeckA]
	if !ok {
		client.sendJSON(WSMessage{Type: "error", Data: "deck not found: " + req.DeckA})
		return
	}
	deckB, ok := h.decks[req.DeckB]
	if !ok {
		client.sendJSON(WSMessage{Type: "error", Data: "deck not found: " + req.DeckB})
		return
	}
	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = 100
	}

	playerA := game.NewPlayer(deckA.Name, deckA)
	playerB := game.NewPlayer(deckB.Name, deckB)
	rng := rand.New(rand.NewSource(req.Seed))
	engine := game.NewBattleEngine(playerA, playerB, rng, nil)

	result, err := engine.SimulateGame(game.GreedyPolicy{}, game.GreedyPolicy{}, maxTurns)
	if err != nil {
		client.sendJSON(WSMessage{Type: "error", Data: err.Error()})
		return
	}

	for _, line := range result.Log {
		client.sendJSON(WSMessage{Type: "log_line", Data: line})
	}
	client.sendJSON(WSMessage{Type: "match_result", Data: MatchResult{
		MatchID:     engine.MatchID(),
		Winner:      result.WinnerName,
		Turns:       result.Turns,
		PrizesLeftA: result.PrizesLeftA,
		PrizesLeftB: result.PrizesLeftB,
	}})
}

func (c *Client) sendJSON(msg WSMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.send <- data:
	default:
	}
}

func (c *Client) readPump(hub *Hub) {
	defer func() {
		hub.unregister <- c
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var msg WSMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		hub.handleMessage(c, msg)
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for message := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
}

func serveWS(hub *Hub, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println(err)
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}

	hub.register <- client

	go client.writePump()
	go client.readPump(hub)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *addr != "" {
		cfg.WebSocket.Address = *addr
	}
	if *deckFile != "" {
		cfg.Simulator.DeckFile = *deckFile
	}

	decks, err := game.ParseDeckFile(cfg.Simulator.DeckFile)
	if err != nil {
		log.Fatalf("load decks: %v", err)
	}

	hub := newHub(decks)
	go hub.run()

	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, w, r)
	})

	log.Printf("WebSocket server starting on %s", cfg.WebSocket.Address)
	log.Printf("WebSocket endpoint: ws://localhost%s/ws", cfg.WebSocket.Address)

	if err := http.ListenAndServe(cfg.WebSocket.Address, nil); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
