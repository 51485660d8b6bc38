package dev

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

// createFlushCommand crea el comando /flush
func (h *handlers) createFlushCommand() *discord.Command {
	return discord.NewCommand(
		"flush",
		"Encola una copia completa de todos los documentos",
		category,
		h.flushHandler,
	).AsDev()
}

func (h *handlers) flushHandler(ctx *discord.CommandContext) error {
	if !h.isOwner(ctx) {
		return h.denyAccess(ctx)
	}
	if h.Writes == nil {
		return ctx.ReplyEphemeral("❌ La persistencia no está inicializada.")
	}

	h.Writes.SnapshotAll()
	logger.Info("Snapshot manual solicitado por "+ctx.UserID(), "DevFlush")
	return ctx.ReplyEphemeral(fmt.Sprintf("✅ Snapshot encolado. Escrituras pendientes: %d", h.Writes.Pending()))
}
