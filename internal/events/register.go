// Package events provides a registry for organizing bot events.
// Events are organized by category (ready, guild, member, message)
package events

import (
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

// Deps are the stores the event handlers update
type Deps struct {
	Bank    *economy.Bank
	Replies *replies.Store
}

type handlers struct {
	Deps
	client *discord.ExtendedClient
}

// RegisterAll registers all events with the Discord client
func RegisterAll(client *discord.ExtendedClient, deps Deps) {
	logger.System("📋 Registrando eventos del bot...", "Events")
	h := &handlers{Deps: deps, client: client}

	// Ready event (bot startup)
	h.registerReadyEvent()

	// Guild events (server join/leave)
	h.registerGuildEvents()

	// Member events (join)
	h.registerMemberEvents()

	// Message events (custom replies, mentions)
	h.registerMessageEvents()

	logger.Success("✅ Todos los eventos registrados correctamente", "Events")
}
