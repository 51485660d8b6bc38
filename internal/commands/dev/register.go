// Package dev provides the owner-only commands registered in the dev guild.
package dev

import (
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/internal/moderation"
	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/database"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
)

const category = "dev"

// Deps are the services the dev commands inspect
type Deps struct {
	Bank    *economy.Bank
	Warns   *moderation.Warns
	Replies *replies.Store
	Writes  *database.WriteBehind
	Relay   relay.Asker
	OwnerID string
}

type handlers struct {
	Deps
}

// Register registers all dev commands (only in dev guild)
func Register(client *discord.ExtendedClient, deps Deps) {
	h := &handlers{Deps: deps}

	client.CommandHandler.RegisterCommand(h.createEvalCommand())
	client.CommandHandler.RegisterCommand(h.createFlushCommand())
	client.CommandHandler.RegisterCommand(h.createStatusCommand())
}

// isOwner checks the invoking user against the configured owner
func (h *handlers) isOwner(ctx *discord.CommandContext) bool {
	return h.OwnerID != "" && ctx.UserID() == h.OwnerID
}

func (h *handlers) denyAccess(ctx *discord.CommandContext) error {
	return ctx.ReplyEphemeral("❌ **Acceso Denegado:** Este comando es solo para el desarrollador.")
}
