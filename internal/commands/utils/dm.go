package utils

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// createDMCommand creates the /dm command
func createDMCommand() *discord.Command {
	return discord.NewCommand(
		"dm",
		"DMs a message to a user",
		category,
		dmHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "The user to DM",
			Required:    true,
		},
		textOption("dm_message", "The message to DM to the user"),
	)
}

// dmHandler handles the /dm command
func dmHandler(ctx *discord.CommandContext) error {
	target := ctx.GetUserOption("user")
	message := ctx.GetStringOption("dm_message")
	if target == nil {
		return ctx.ReplyError("You must mention a user to DM!")
	}

	guildName := ""
	if g := ctx.Guild(); g != nil {
		guildName = g.Name
	}
	embed := discord.NewEmbed(dmTitle(ctx.User().Username, guildName), message)

	channel, err := ctx.Session.UserChannelCreate(target.ID)
	if err == nil {
		_, err = ctx.Session.ChannelMessageSendEmbed(channel.ID, embed)
	}
	if err != nil {
		logger.Debug("DM a "+target.ID+" fallido: "+err.Error(), "Utils")
		return ctx.ReplyEmbed(discord.ErrorEmbed("DM to user failed (Possible reason: User's DMs are closed)."))
	}
	return ctx.ReplyEmbed(discord.SuccessEmbed("Successfully DM-ed message to user."))
}

func dmTitle(sender, guildName string) string {
	if guildName == "" {
		return fmt.Sprintf("Alert! Message from %s :-", sender)
	}
	return fmt.Sprintf("Alert! Message from %s at %s :-", sender, guildName)
}
