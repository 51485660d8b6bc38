package events

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func (h *handlers) registerMemberEvents() {
	h.client.EventHandler.OnGuildMemberAdd(h.onGuildMemberAdd)
}

// onGuildMemberAdd gives new members default economy settings
func (h *handlers) onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	if m.User == nil || m.User.Bot || h.Bank == nil {
		return
	}
	if h.Bank.EnsureSettings([]string{m.User.ID}) > 0 {
		logger.Debug(fmt.Sprintf("👋 Ajustes creados para %s en %s", m.User.ID, m.GuildID), "Member")
	}
}
