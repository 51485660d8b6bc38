package events

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func (h *handlers) registerMessageEvents() {
	h.client.EventHandler.OnMessageCreate(h.onMessageCreate)
}

// onMessageCreate answers custom replies and bot mentions
func (h *handlers) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignorar mensajes de bots
	if m.Author == nil || m.Author.Bot {
		return
	}

	if h.Replies != nil {
		if reply, ok := h.Replies.Match(m.Content); ok {
			if _, err := s.ChannelMessageSend(m.ChannelID, reply); err != nil {
				logger.Error(fmt.Sprintf("Error enviando respuesta personalizada: %v", err), "Message")
			}
		}
	}

	if s.State.User != nil && mentions(m.Mentions, s.State.User.ID) {
		embed := discord.NewEmbed("Info!", "I use slash commands! Type `/` to see available commands.")
		if _, err := s.ChannelMessageSendEmbed(m.ChannelID, embed); err != nil {
			logger.Error(fmt.Sprintf("Error enviando respuesta: %v", err), "Message")
		}
	}
}

func mentions(users []*discordgo.User, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
