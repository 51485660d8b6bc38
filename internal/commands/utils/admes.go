package utils

import (
	"context"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/relay"
)

// createAdmesCommand creates the /admes command
func (h *handlers) createAdmesCommand() *discord.Command {
	return discord.NewCommand(
		"admes",
		"Ask anything to the bot",
		category,
		h.admesHandler,
	).WithOptions(textOption("query", "The question to ask the bot"))
}

// admesHandler forwards the question to the relay peer
func (h *handlers) admesHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	query := ctx.GetStringOption("query")
	logger.Info("'"+ctx.User().Username+"' preguntó: "+query, "Admes")

	if h.Relay == nil {
		return ctx.EditReplyEmbed(discord.ErrorEmbed(admesUnavailable))
	}

	askCtx, cancel := context.WithTimeout(context.Background(), relay.ReplyTimeout)
	defer cancel()

	reply, err := h.Relay.Ask(askCtx, query)
	if err != nil {
		logger.Warn("Admes sin respuesta: "+err.Error(), "Admes")
		return ctx.EditReplyEmbed(discord.ErrorEmbed(admesUnavailable))
	}
	return ctx.EditReplyEmbed(discord.NewEmbed("Reply: "+reply, ""))
}

const admesUnavailable = "Could not connect to Admes server or no response received. Please make sure the Admes server is running."
