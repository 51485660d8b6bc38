// Package mod - /nuke command
package mod

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createNukeCommand creates the /nuke command
func createNukeCommand() *discord.Command {
	return discord.NewCommand(
		"nuke",
		"Cleans everything in a channel",
		category,
		nukeHandler,
	)
}

// nukeHandler deletes the channel and recreates it with the same settings
func nukeHandler(ctx *discord.CommandContext) error {
	channel := ctx.Channel()
	if channel == nil || channel.Type != discordgo.ChannelTypeGuildText {
		return ctx.ReplyError("This command only works in text channels!")
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	by := ctx.User().Username
	if _, err := ctx.Session.ChannelDelete(channel.ID); err != nil {
		logger.Warn("No se pudo borrar el canal "+channel.ID+": "+err.Error(), "Mod")
		return ctx.EditReplyEmbed(discord.ErrorEmbed("I don't have permission to manage channels!"))
	}

	recreated, err := ctx.Session.GuildChannelCreateComplex(channel.GuildID, recreateData(channel),
		discordgo.WithAuditLogReason("Nuked by "+by))
	if err != nil {
		return fmt.Errorf("recreate channel %s: %w", channel.Name, err)
	}

	desc := fmt.Sprintf("Successfully nuked this channel (Nuked By: %s).", by)
	_, err = ctx.Session.ChannelMessageSendEmbed(recreated.ID, discord.SuccessEmbed(desc))
	return err
}

// recreateData copies the settings a nuked channel keeps
func recreateData(c *discordgo.Channel) discordgo.GuildChannelCreateData {
	return discordgo.GuildChannelCreateData{
		Name:                 c.Name,
		Type:                 c.Type,
		Topic:                c.Topic,
		RateLimitPerUser:     c.RateLimitPerUser,
		Position:             c.Position,
		PermissionOverwrites: c.PermissionOverwrites,
		ParentID:             c.ParentID,
		NSFW:                 c.NSFW,
	}
}
