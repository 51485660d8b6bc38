package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	ready  bool
	guilds int
}

func (b fakeBot) IsReady() bool     { return b.ready }
func (b fakeBot) GuildCount() int   { return b.guilds }
func (b fakeBot) BotUserID() string { return "891518158790361138" }

type fakeStore struct{}

func (fakeStore) GetStatus() (string, bool) { return "🟢 | Online", true }
func (fakeStore) PendingWrites() int        { return 2 }

type fakeQueue int

func (q fakeQueue) Pending() int { return int(q) }

func newTestServer(bot Bot) *Server {
	s := NewServer("")
	SetupRoutes(s, bot, fakeStore{}, fakeQueue(5))
	return s
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.Engine().ServeHTTP(rec, req)
	return rec
}

func TestStatusPage(t *testing.T) {
	rec := get(t, newTestServer(fakeBot{ready: true, guilds: 12}), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Bot status: Online - 12 servers")
	assert.Contains(t, body, `href="https://discord.com/api/oauth2/authorize?client_id=891518158790361138&amp;permissions=8&amp;scope=bot"`)
}

func TestStatusPageOffline(t *testing.T) {
	rec := get(t, newTestServer(fakeBot{}), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Bot status: Offline")
}

func TestAPIStatus(t *testing.T) {
	rec := get(t, newTestServer(fakeBot{ready: true}), "/api/status")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Database struct {
			IsOnline      bool `json:"isOnline"`
			PendingWrites int  `json:"pendingWrites"`
			OfflineQueue  int  `json:"offlineQueue"`
		} `json:"database"`
		Bot struct {
			IsOnline bool `json:"isOnline"`
		} `json:"bot"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Database.IsOnline)
	assert.Equal(t, 5, body.Database.PendingWrites)
	assert.Equal(t, 2, body.Database.OfflineQueue)
	assert.True(t, body.Bot.IsOnline)
}

func TestAPIBotOffline(t *testing.T) {
	rec := get(t, newTestServer(fakeBot{}), "/api/bot")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(fakeBot{})

	assert.Equal(t, http.StatusOK, get(t, s, "/api/health").Code)
	assert.Equal(t, http.StatusNotFound, get(t, s, "/nope").Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := get(t, newTestServer(fakeBot{}), "/metrics")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "go_goroutines"))
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(rateLimitMiddleware(RateLimitConfig{WindowMs: time.Minute, MaxRequests: 2}))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
