package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"trivia-service/internal/app"
	"trivia-service/internal/config"
	"trivia-service/internal/domain"
	"trivia-service/internal/infra/memory"
)

func TestWebSocketPlaythrough(t *testing.T) {
	service := newTestService()
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+server.URL[len("http"):]+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	// Categories arrive on connect.
	typ, _ := readNext(t, conn)
	if typ != "categories" {
		t.Fatalf("expected categories, got %s", typ)
	}

	writeMsg(t, conn, "start", map[string]any{"categoryId": "science", "playerName": "Ann"})
	typ, payload := readNext(t, conn)
	if typ != "session" {
		t.Fatalf("expected session, got %s", typ)
	}
	var started app.StartedSession
	if err := json.Unmarshal(payload, &started); err != nil {
		t.Fatalf("decode session: %v", err)
	}
	if started.Question.Prompt == "" || len(started.Question.Options) != 4 {
		t.Fatalf("unexpected question %+v", started.Question)
	}

	writeMsg(t, conn, "answer", map[string]any{"option": "Au"})
	typ, payload = readNext(t, conn)
	if typ != "answerResult" {
		t.Fatalf("expected answerResult, got %s", typ)
	}
	var result domain.AnswerResult
	if err := json.Unmarshal(payload, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !result.Correct || result.TotalScore != 10 {
		t.Fatalf("expected correct answer worth 10, got %+v", result)
	}

	writeMsg(t, conn, "next", nil)
	typ, payload = readNext(t, conn)
	if typ != "completed" {
		t.Fatalf("expected completed, got %s", typ)
	}
	var completed completedPayload
	if err := json.Unmarshal(payload, &completed); err != nil {
		t.Fatalf("decode completed: %v", err)
	}
	if completed.FinalScore != 10 || completed.MaxScore != 10 {
		t.Fatalf("expected 10/10, got %+v", completed)
	}
	if completed.Message == "" {
		t.Fatalf("expected a results message")
	}

	// Empty name is rejected before the score store is ever involved.
	writeMsg(t, conn, "submitScore", map[string]any{"playerName": "  "})
	typ, _ = readNext(t, conn)
	if typ != "error" {
		t.Fatalf("expected error for empty name, got %s", typ)
	}

	writeMsg(t, conn, "submitScore", map[string]any{"playerName": "Ann"})
	typ, _ = readNext(t, conn)
	if typ != "scoreSaved" {
		t.Fatalf("expected scoreSaved, got %s", typ)
	}
	typ, payload = readNext(t, conn)
	if typ != "leaderboard" {
		t.Fatalf("expected leaderboard, got %s", typ)
	}
	var lb domain.Leaderboard
	if err := json.Unmarshal(payload, &lb); err != nil {
		t.Fatalf("decode leaderboard: %v", err)
	}
	if len(lb.Entries) != 1 || lb.Entries[0].PlayerName != "Ann" || lb.Entries[0].Score != 10 {
		t.Fatalf("unexpected leaderboard %+v", lb.Entries)
	}

	// Back to the welcome screen.
	writeMsg(t, conn, "playAgain", nil)
	typ, _ = readNext(t, conn)
	if typ != "categories" {
		t.Fatalf("expected categories after playAgain, got %s", typ)
	}
}

func TestWebSocketRejectsUnknownType(t *testing.T) {
	service := newTestService()
	wsHandler := NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	defer server.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+server.URL[len("http"):]+"/ws", nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if typ, _ := readNext(t, conn); typ != "categories" {
		t.Fatalf("expected categories first, got %s", typ)
	}

	writeMsg(t, conn, "bogus", nil)
	if typ, _ := readNext(t, conn); typ != "error" {
		t.Fatalf("expected error for unknown type, got %s", typ)
	}
}

func newTestService() *app.GameService {
	loader := memory.NewStaticQuestionLoader(
		[]domain.Category{{ID: "science", Name: "Science", Description: "Test your knowledge of science"}},
		[]domain.Question{
			{ID: "s1", CategoryID: "science", Prompt: "Chemical symbol for gold?", CorrectAnswer: "Au", IncorrectAnswers: []string{"Ag", "Fe", "Hg"}, Difficulty: "easy"},
		},
	)
	return app.NewGameService(
		memory.NewSessionStore(),
		memory.NewQuestionRepository(loader, time.Minute),
		memory.NewScoreStore(),
		config.Game{QuestionsPerSession: 1, PointsPerQuestion: 10, LeaderboardLimit: 10, SubmitRetries: 1},
	)
}

func writeMsg(t *testing.T, conn *websocket.Conn, typ string, payload any) {
	t.Helper()
	msg := map[string]any{"type": typ}
	if payload != nil {
		msg["payload"] = payload
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write %s: %v", typ, err)
	}
}

func readNext(t *testing.T, conn *websocket.Conn) (string, json.RawMessage) {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg struct {
		Type    string          `json:"type"`
		Payload json.RawMessage `json:"payload"`
	}
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read: %v", err)
	}
	return msg.Type, msg.Payload
}
