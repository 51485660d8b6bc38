// Package mod - /clear command
package mod

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const maxClear = 100

// createClearCommand creates the /clear command
func createClearCommand() *discord.Command {
	minValue := 1.0
	return discord.NewCommand(
		"clear",
		"Clears specified number of messages",
		category,
		clearHandler,
	).WithOptions(&discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        "amount",
		Description: "The number of messages to clear",
		Required:    true,
		MinValue:    &minValue,
		MaxValue:    maxClear,
	})
}

// clearHandler handles the /clear command
func clearHandler(ctx *discord.CommandContext) error {
	amount := ctx.GetIntOption("amount")
	if !validClearAmount(amount) {
		return ctx.ReplyError("Amount must be between 1 and 100!")
	}

	messages, err := ctx.Session.ChannelMessages(ctx.ChannelID(), int(amount), "", "", "")
	if err != nil {
		return err
	}
	ids := make([]string, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}

	if err := ctx.Session.ChannelMessagesBulkDelete(ctx.ChannelID(), ids); err != nil {
		logger.Warn("No se pudieron borrar mensajes en "+ctx.ChannelID()+": "+err.Error(), "Mod")
		return ctx.ReplyError("I don't have permission to manage messages!")
	}

	desc := fmt.Sprintf("%s cleared %d message(s) in: <#%s>", ctx.User().Username, len(ids), ctx.ChannelID())
	return ctx.ReplyEphemeralEmbed(discord.SuccessEmbed(desc))
}

func validClearAmount(amount int64) bool {
	return amount >= 1 && amount <= maxClear
}
