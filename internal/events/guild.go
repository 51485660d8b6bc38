package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/metrics"
	"github.com/bwmarrin/discordgo"
)

// joinWindow separates a fresh invite from the GuildCreate replay on connect
const joinWindow = 10 * time.Second

func (h *handlers) registerGuildEvents() {
	h.client.EventHandler.OnGuildCreate(h.onGuildCreate)
	h.client.EventHandler.OnGuildDelete(h.onGuildDelete)
}

// onGuildCreate is called when a guild becomes available or the bot joins one
func (h *handlers) onGuildCreate(s *discordgo.Session, g *discordgo.GuildCreate) {
	metrics.SetGuildCount(len(s.State.Guilds))
	if !recentlyJoined(g.JoinedAt, time.Now()) {
		return
	}

	logger.Info(fmt.Sprintf("➕ Bot agregado a servidor: %s (ID: %s)", g.Name, g.ID), "Guild")
	logger.Debug(fmt.Sprintf("   Miembros: %d | Canales: %d", g.MemberCount, len(g.Channels)), "Guild")

	if h.Bank != nil {
		h.Bank.EnsureSettings(humanIDs(g.Members))
	}

	if g.SystemChannelID == "" {
		return
	}
	embed := discord.NewEmbed("Thanks for adding me!", "Hi, I'm **Maxis**. Use `/help` to see all my commands.")
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("Utility", "`/help utility`", true),
		discord.Field("Moderation", "`/help moderation`", true),
		discord.Field("Economy", "`/help economy`", true),
	}
	if _, err := s.ChannelMessageSendEmbed(g.SystemChannelID, embed); err != nil {
		logger.Error(fmt.Sprintf("Error enviando mensaje de bienvenida: %v", err), "Guild")
	}
}

// onGuildDelete is called when the bot is removed from a server
func (h *handlers) onGuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	metrics.SetGuildCount(len(s.State.Guilds))
	logger.Info(fmt.Sprintf("➖ Bot removido del servidor ID: %s", g.ID), "Guild")
}

func recentlyJoined(joinedAt, now time.Time) bool {
	return !joinedAt.IsZero() && now.Sub(joinedAt) <= joinWindow
}
