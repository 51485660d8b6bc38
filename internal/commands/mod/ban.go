// Package mod - /ban and /unban commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

// createBanCommand creates the /ban command
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Bans the mentioned user",
		category,
		banHandler,
	).WithOptions(
		userOption("The user to ban"),
		reasonOption("The reason for banning (optional)"),
	)
}

// banHandler handles the /ban command
func banHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user to ban!")
	}
	reason := ctx.GetStringOption("reason")

	if err := ctx.Session.GuildBanCreateWithReason(ctx.GuildID(), user.ID, reason, 0); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo banear a %s: %v", user.ID, err), "Mod")
		return ctx.ReplyError("I can't ban that user! Reasons - No ban permission, lower role or lower position.")
	}

	return ctx.ReplyEmbed(discord.SuccessEmbed(withReason(fmt.Sprintf("Successfully banned user %s.", user.String()), reason)))
}

// createUnbanCommand creates the /unban command
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Unbans the mentioned user",
		category,
		unbanHandler,
	).WithOptions(userOption("The user to unban"))
}

// unbanHandler handles the /unban command
func unbanHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user to unban!")
	}

	if err := ctx.Session.GuildBanDelete(ctx.GuildID(), user.ID); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo desbanear a %s: %v", user.ID, err), "Mod")
		return ctx.ReplyError("I can't unban that user! Reasons - No unban permission.")
	}

	return ctx.ReplyEmbed(discord.SuccessEmbed(fmt.Sprintf("Successfully unbanned user %s.", user.String())))
}
