package events

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/metrics"
	"github.com/bwmarrin/discordgo"
)

func (h *handlers) registerReadyEvent() {
	h.client.EventHandler.OnReady(h.onReady)
	h.client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func (h *handlers) onReady(s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s", r.User.Username), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")
	logger.Info("Invite link for Maxis: "+discord.InviteURL(r.User.ID), "Ready")
	metrics.SetGuildCount(len(r.Guilds))

	err := s.UpdateStatusComplex(discordgo.UpdateStatusData{
		Status: string(discordgo.StatusOnline),
		Activities: []*discordgo.Activity{
			{Name: " /help", Type: discordgo.ActivityTypeWatching},
		},
	})
	if err != nil {
		logger.Error(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
	}

	h.client.CommandHandler.RegisterCommands()

	guildIDs := make([]string, 0, len(r.Guilds))
	for _, g := range r.Guilds {
		guildIDs = append(guildIDs, g.ID)
	}
	go h.ensureSettings(guildIDs)
}

// ensureSettings gives every known member default economy settings
func (h *handlers) ensureSettings(guildIDs []string) {
	defer errors.RecoverMiddleware()()
	if h.Bank == nil {
		return
	}

	added := 0
	for _, id := range guildIDs {
		members, err := h.client.GuildMembers(id)
		if err != nil {
			logger.Warn(fmt.Sprintf("No se pudieron obtener los miembros de %s: %v", id, err), "Ready")
			continue
		}
		added += h.Bank.EnsureSettings(humanIDs(members))
	}
	logger.Info(fmt.Sprintf("Ajustes creados para %d usuarios", added), "Ready")
}

func humanIDs(members []*discordgo.Member) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		if m.User != nil && !m.User.Bot {
			ids = append(ids, m.User.ID)
		}
	}
	return ids
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}
