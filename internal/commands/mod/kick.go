// Package mod - /kick command
package mod

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

// createKickCommand creates the /kick command
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Kicks the mentioned user",
		category,
		kickHandler,
	).WithOptions(
		userOption("The user to kick"),
		reasonOption("The reason for kicking (optional)"),
	)
}

// kickHandler handles the /kick command
func kickHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user to kick!")
	}
	reason := ctx.GetStringOption("reason")

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.GuildID(), user.ID, reason); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo expulsar a %s: %v", user.ID, err), "Mod")
		return ctx.ReplyError("I can't kick that user! Reasons - No kick permission, lower role or lower position.")
	}

	return ctx.ReplyEmbed(discord.SuccessEmbed(withReason(fmt.Sprintf("Successfully kicked user %s.", user.String()), reason)))
}
