// Package mod - /mute and /unmute commands
package mod

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mute command
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Mutes the mentioned user (Mute = Disable chat and VC)",
		category,
		func(ctx *discord.CommandContext) error { return muteHandler(ctx, true) },
	).WithOptions(userOption("The user to mute"))
}

// createUnmuteCommand creates the /unmute command
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Unmutes the mentioned user (Mute = Enable chat and VC)",
		category,
		func(ctx *discord.CommandContext) error { return muteHandler(ctx, false) },
	).WithOptions(userOption("The user to unmute"))
}

// muteHandler server-mutes and deafens, or undoes both
func muteHandler(ctx *discord.CommandContext, mute bool) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user!")
	}

	verb := "mute"
	if !mute {
		verb = "unmute"
	}

	if err := setVoiceMute(ctx.Session, ctx.GuildID(), user.ID, mute); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo aplicar %s a %s: %v", verb, user.ID, err), "Mod")
		if mute {
			return ctx.ReplyError("I can't mute that user! Reasons - No mute permission, lower role or lower position.")
		}
		return ctx.ReplyError("I can't unmute that user! Reasons - No unmute permission.")
	}

	return ctx.ReplyEmbed(discord.SuccessEmbed(fmt.Sprintf("Successfully %sd user %s.", verb, user.String())))
}

func setVoiceMute(s *discordgo.Session, guildID, userID string, mute bool) error {
	if err := s.GuildMemberMute(guildID, userID, mute); err != nil {
		return err
	}
	return s.GuildMemberDeafen(guildID, userID, mute)
}
