package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"trivia-service/internal/app"
)

// WSHandler drives one play-through per websocket connection. The connection
// only ever reports user intents; every state change goes through the engine.
type WSHandler struct {
	service  *app.GameService
	upgrader websocket.Upgrader
}

func NewWSHandler(service *app.GameService) *WSHandler {
	return &WSHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type inboundMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type startPayload struct {
	CategoryID string `json:"categoryId"`
	PlayerName string `json:"playerName"`
}

type answerPayload struct {
	Option string `json:"option"`
}

type submitPayload struct {
	PlayerName string `json:"playerName"`
}

type completedPayload struct {
	FinalScore int    `json:"finalScore"`
	MaxScore   int    `json:"maxScore"`
	Message    string `json:"message"`
}

type outboundMessage[T any] struct {
	Type    string `json:"type"`
	Payload T      `json:"payload"`
}

type errorPayload struct {
	Message string `json:"message"`
}

// ServeWS upgrades HTTP requests to websockets and wires them into the game use cases.
func (h *WSHandler) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	send := make(chan outboundMessage[any], 16)
	writerDone := make(chan struct{})

	go func() {
		defer close(writerDone)
		for msg := range send {
			if err := conn.WriteJSON(msg); err != nil {
				log.Printf("ws write error: %v", err)
				return
			}
		}
	}()

	h.sendCategories(r, send)

	var sessionID string
	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			break
		}
		switch inbound.Type {
		case "start":
			var payload startPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMsg("invalid start payload")
				continue
			}
			started, err := h.service.StartSession(r.Context(), payload.PlayerName, payload.CategoryID)
			if err != nil {
				send <- errorMsg(err.Error())
				continue
			}
			sessionID = started.SessionID
			send <- outboundMessage[any]{Type: "session", Payload: started}

		case "answer":
			var payload answerPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMsg("invalid answer payload")
				continue
			}
			result, err := h.service.SelectAnswer(r.Context(), sessionID, payload.Option)
			if err != nil {
				send <- errorMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "answerResult", Payload: result}

		case "next":
			advanced, err := h.service.Advance(r.Context(), sessionID)
			if err != nil {
				send <- errorMsg(err.Error())
				continue
			}
			if advanced.Completed {
				send <- outboundMessage[any]{Type: "completed", Payload: completedPayload{
					FinalScore: advanced.FinalScore,
					MaxScore:   advanced.MaxScore,
					Message:    resultMessage(advanced.FinalScore, advanced.MaxScore),
				}}
			} else {
				send <- outboundMessage[any]{Type: "question", Payload: advanced.Question}
			}

		case "submitScore":
			var payload submitPayload
			if err := json.Unmarshal(inbound.Payload, &payload); err != nil {
				send <- errorMsg("invalid submit payload")
				continue
			}
			entry, err := h.service.SubmitScore(r.Context(), sessionID, payload.PlayerName)
			if err != nil {
				send <- errorMsg(err.Error())
				continue
			}
			send <- outboundMessage[any]{Type: "scoreSaved", Payload: entry}
			h.sendLeaderboard(r, send)

		case "leaderboard":
			h.sendLeaderboard(r, send)

		case "playAgain":
			if sessionID != "" {
				h.service.Reset(sessionID)
				sessionID = ""
			}
			h.sendCategories(r, send)

		default:
			send <- errorMsg("unsupported message type")
		}
	}

	if sessionID != "" {
		h.service.Reset(sessionID)
	}
	close(send)
	<-writerDone
}

func (h *WSHandler) sendCategories(r *http.Request, send chan<- outboundMessage[any]) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		send <- errorMsg(err.Error())
		return
	}
	send <- outboundMessage[any]{Type: "categories", Payload: categories}
}

func (h *WSHandler) sendLeaderboard(r *http.Request, send chan<- outboundMessage[any]) {
	lb, err := h.service.Leaderboard(r.Context())
	if err != nil {
		send <- errorMsg(err.Error())
		return
	}
	send <- outboundMessage[any]{Type: "leaderboard", Payload: lb}
}

func errorMsg(message string) outboundMessage[any] {
	return outboundMessage[any]{Type: "error", Payload: errorPayload{Message: message}}
}

// resultMessage mirrors the results screen copy of the original game.
func resultMessage(score, max int) string {
	if max <= 0 {
		return "Keep practicing! You'll get better!"
	}
	percentage := score * 100 / max
	switch {
	case percentage >= 80:
		return "Amazing! You're a trivia master!"
	case percentage >= 50:
		return "Good job! You know your stuff!"
	default:
		return "Keep practicing! You'll get better!"
	}
}
