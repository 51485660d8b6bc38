package utils

import (
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createTTICommand creates the /tti command
func createTTICommand() *discord.Command {
	return discord.NewCommand(
		"tti",
		"Converts text to image",
		category,
		ttiHandler,
	).WithOptions(textOption("text", "The text to convert to image"))
}

// ttiHandler handles the /tti command
func ttiHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	buf, err := encodePNG(renderText(" " + ctx.GetStringOption("text") + " "))
	if err != nil {
		return err
	}

	embed := discord.NewEmbed("Success!", "Here is your image.")
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://text.png"}
	return ctx.EditReplyFile(embed, &discordgo.File{Name: "text.png", ContentType: "image/png", Reader: buf})
}
