// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Bot is the part of the Discord client the routes report on
type Bot interface {
	IsReady() bool
	GuildCount() int
	BotUserID() string
}

// Store reports the database connection and its offline queue
type Store interface {
	GetStatus() (string, bool)
	PendingWrites() int
}

// Queue reports documents waiting in the write-behind queue
type Queue interface {
	Pending() int
}

type routes struct {
	bot    Bot
	store  Store
	writes Queue
}

// SetupRoutes sets up the status page, the API routes and /metrics
func SetupRoutes(s *Server, bot Bot, store Store, writes Queue) {
	r := &routes{bot: bot, store: store, writes: writes}

	s.GET("/", r.indexHandler)
	s.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.Group("/api")
	{
		api.GET("/status", r.statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", r.botInfoHandler)
	}
}

func (r *routes) online() bool {
	return r.bot != nil && r.bot.IsReady()
}

// indexHandler serves the status page
func (r *routes) indexHandler(c *gin.Context) {
	invite, guilds := "#", 0
	if r.online() {
		invite = discord.InviteURL(r.bot.BotUserID())
		guilds = r.bot.GuildCount()
	}

	page, err := renderStatusPage(invite, r.online(), guilds)
	if err != nil {
		logger.Error("Error generando la página de estado: "+err.Error(), "WebServer")
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// statusHandler returns the bot and database status
func (r *routes) statusHandler(c *gin.Context) {
	dbStatus, dbOnline, offline := "🔴 | Offline", false, 0
	if r.store != nil {
		dbStatus, dbOnline = r.store.GetStatus()
		offline = r.store.PendingWrites()
	}
	pending := 0
	if r.writes != nil {
		pending = r.writes.Pending()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":        dbStatus,
			"isOnline":      dbOnline,
			"pendingWrites": pending,
			"offlineQueue":  offline,
		},
		"bot": gin.H{
			"isOnline": r.online(),
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Maxis is running",
		"version": config.Version,
	})
}

// botInfoHandler returns information about the bot
func (r *routes) botInfoHandler(c *gin.Context) {
	if !r.online() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":      r.bot.BotUserID(),
		"guilds":  r.bot.GuildCount(),
		"isReady": true,
		"invite":  discord.InviteURL(r.bot.BotUserID()),
	})
}
