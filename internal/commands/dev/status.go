package dev

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/mqtt"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
	"github.com/bwmarrin/discordgo"
)

// createStatusCommand crea el comando /status
func (h *handlers) createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado de la base de datos, MQTT y el relay",
		category,
		h.statusHandler,
	).AsDev()
}

func (h *handlers) statusHandler(ctx *discord.CommandContext) error {
	if !h.isOwner(ctx) {
		return h.denyAccess(ctx)
	}

	dbStatus, offlineWrites := "🔴 | Offline", 0
	if db := database.Get(); db != nil {
		dbStatus, _ = db.GetStatus()
		offlineWrites = db.PendingWrites()
	}
	pending := 0
	if h.Writes != nil {
		pending = h.Writes.Pending()
	}

	embed := &discordgo.MessageEmbed{
		Title: "📊 Estado de Maxis",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			discord.Field("Base de datos", dbStatus, true),
			discord.Field("Escrituras pendientes", fmt.Sprintf("%d", pending), true),
			discord.Field("Cola offline", fmt.Sprintf("%d", offlineWrites), true),
			discord.Field("MQTT", onlineLabel(mqtt.Get() != nil && mqtt.Get().IsConnected()), true),
			discord.Field("Admes", relayLabel(h.Relay), true),
			discord.Field("Comandos", fmt.Sprintf("%d", ctx.Client.Commands.Size()), true),
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEphemeralEmbed(embed)
}

func onlineLabel(ok bool) string {
	if ok {
		return "🟢 | Online"
	}
	return "🔴 | Offline"
}

func relayLabel(a relay.Asker) string {
	switch r := a.(type) {
	case nil:
		return "⚪ | Desactivado"
	case *relay.Server:
		if r.Connected() {
			return "🟢 | Peer conectado"
		}
		return "🟡 | Sin peer"
	default:
		return "🟢 | MQTT"
	}
}
