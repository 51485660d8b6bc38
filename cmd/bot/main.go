// Package main is the entry point for the Maxis application.
// It initializes all systems and starts the Discord bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/PancyStudios/MaxisGo/internal/commands"
	"github.com/PancyStudios/MaxisGo/internal/commands/eco"
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/internal/events"
	"github.com/PancyStudios/MaxisGo/internal/moderation"
	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/mqtt"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
	"github.com/PancyStudios/MaxisGo/pkg/web"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

const (
	httpTimeout     = 10 * time.Second
	shutdownTimeout = 15 * time.Second
	loadAttempts    = 5
	loadRetryDelay  = 3 * time.Second
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.Init(cfg.ErrorWebhook, cfg.LogsWebhook)
	defer log.Close()

	logger.System("Iniciando Maxis...", "Main")
	logger.Info(fmt.Sprintf("Directorio de trabajo: %s", getCurrentDir()), "Main")

	// Initialize error handler
	var discordClient *discord.ExtendedClient
	errors.Init(cfg.ErrorWebhook, func() {
		if discordClient != nil {
			if err := discordClient.Stop(); err != nil {
				logger.Error("Error deteniendo el cliente: "+err.Error(), "Main")
			}
		}
	})

	// Initialize database; the write-behind queue retries while it is offline
	db, err := database.Init(cfg.MongoDBURL, cfg.DBName)
	if err != nil {
		logger.Error(fmt.Sprintf("Error connecting to database: %v", err), "Main")
	}
	defer func() {
		if err := db.Disconnect(); err != nil {
			logger.Error("Error desconectando la base de datos: "+err.Error(), "Main")
		}
	}()
	store := database.NewMongoStore(db, cfg.DBCollection)

	// Initialize Discord client before the bank so receipts can be DMed
	discordClient, err = discord.Init(cfg.BotToken)
	if err != nil {
		logger.Critical(fmt.Sprintf("Error creating Discord client: %v", err), "Main")
		os.Exit(1)
	}

	// Initialize MQTT
	mqttClientID := "maxis"
	if !cfg.IsProd() {
		mqttClientID = "maxis_canary"
	}
	mqttClient := mqtt.Init(cfg.MQTTHost, cfg.MQTTPort, cfg.MQTTUser, cfg.MQTTPassword, mqttClientID)
	defer mqttClient.Destroy()

	// State stores, restored from the last snapshot
	writes := database.NewWriteBehind(store)
	notifier := eco.NewReceiptNotifier(discordClient.Session).WithPublisher(mqttClient)
	bank := economy.NewBank(writes, economy.WithNotifier(notifier))
	warns := moderation.NewWarns(writes)
	customReplies := replies.New(writes)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), loadAttempts*(httpTimeout+loadRetryDelay))
	if err := writes.Load(loadCtx, loadAttempts, loadRetryDelay, bank, warns, customReplies); err != nil {
		logger.Error(err.Error(), "Main")
	}
	cancelLoad()

	writes.Register(bank, warns, customReplies)
	writes.Start()
	if err := writes.Schedule(cfg.SnapshotCron); err != nil {
		logger.Error(err.Error(), "Main")
	}

	// Admes relay
	asker, stopRelay := startRelay(cfg, mqttClient)
	defer stopRelay()

	// Initialize web server
	webServer := web.Init(cfg.LogsWebServerHook)
	web.SetupRoutes(webServer, discordClient, db, writes)
	webServer.StartAsync(cfg.Port)

	httpClient := resty.New().SetTimeout(httpTimeout)
	httpClient.JSONMarshal = json.Marshal
	httpClient.JSONUnmarshal = json.Unmarshal

	// Register commands using the commands package
	commands.RegisterAll(discordClient, commands.Services{
		Bank:    bank,
		Warns:   warns,
		Replies: customReplies,
		Writes:  writes,
		HTTP:    httpClient,
		Relay:   asker,
		Config:  cfg,
	})

	// Register events using the events package
	events.RegisterAll(discordClient, events.Deps{Bank: bank, Replies: customReplies})

	// Start the bot
	if err := discordClient.Start(); err != nil {
		logger.Critical(fmt.Sprintf("Error starting Discord client: %v", err), "Main")
		os.Exit(1)
	}

	logger.Success("Maxis iniciado correctamente!", "Main")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.System("Apagando Maxis...", "Main")
	if err := discordClient.Stop(); err != nil {
		logger.Error("Error deteniendo el cliente: "+err.Error(), "Main")
	}

	writes.SnapshotAll()
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := writes.Close(ctx); err != nil {
		logger.Error(fmt.Sprintf("Quedaron %d escrituras sin guardar: %v", writes.Pending(), err), "Main")
	}
}

// startRelay starts the Admes relay in the configured mode
func startRelay(cfg *config.Config, mqttClient *mqtt.MqttCommunicator) (relay.Asker, func()) {
	if cfg.UsesMQTTRelay() {
		logger.Info("Admes usando MQTT en el topic "+relay.Topic, "Main")
		return relay.NewMQTTAsker(mqttClient), func() {}
	}

	srv := relay.NewServer(":" + strconv.Itoa(cfg.AdmesPort))
	if err := srv.Start(); err != nil {
		logger.Error("Error iniciando el servidor Admes: "+err.Error(), "Main")
		return nil, func() {}
	}
	logger.Info(fmt.Sprintf("Admes server: Port %d", cfg.AdmesPort), "Main")
	return srv, func() {
		if err := srv.Close(); err != nil {
			logger.Warn("Error cerrando el servidor Admes: "+err.Error(), "Main")
		}
	}
}

// getCurrentDir returns the current working directory
func getCurrentDir() string {
	dir, err := os.Getwd()
	if err != nil {
		return "unknown"
	}
	return dir
}
