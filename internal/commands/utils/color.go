package utils

import (
	"fmt"
	"math/rand/v2"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

func channelOption(name string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionInteger,
		Name:        name,
		Description: fmt.Sprintf("The %s value of the color", name),
		Required:    true,
	}
}

// createMakeColorCommand creates the /makecolor command
func createMakeColorCommand() *discord.Command {
	return discord.NewCommand(
		"makecolor",
		"Make a color using RGB values",
		category,
		makeColorHandler,
	).WithOptions(channelOption("red"), channelOption("green"), channelOption("blue"))
}

// makeColorHandler handles the /makecolor command
func makeColorHandler(ctx *discord.CommandContext) error {
	r, g, b := ctx.GetIntOption("red"), ctx.GetIntOption("green"), ctx.GetIntOption("blue")
	if !validChannel(r) || !validChannel(g) || !validChannel(b) {
		return ctx.ReplyError("RGB values must be between 0 and 255 (inclusive)!")
	}
	return sendColor(ctx, fmt.Sprintf("Here's your color for (R:%d, G:%d, B:%d):-", r, g, b), uint8(r), uint8(g), uint8(b))
}

// createRandomColorCommand creates the /randomcolor command
func createRandomColorCommand() *discord.Command {
	return discord.NewCommand(
		"randomcolor",
		"Generates a random color",
		category,
		randomColorHandler,
	)
}

// randomColorHandler handles the /randomcolor command
func randomColorHandler(ctx *discord.CommandContext) error {
	r, g, b := uint8(rand.IntN(256)), uint8(rand.IntN(256)), uint8(rand.IntN(256))
	return sendColor(ctx, fmt.Sprintf("Here's your random color (R:%d, G:%d, B:%d):-", r, g, b), r, g, b)
}

func sendColor(ctx *discord.CommandContext, title string, r, g, b uint8) error {
	buf, err := encodePNG(renderColor(r, g, b))
	if err != nil {
		return err
	}
	embed := discord.NewEmbed(title, "")
	embed.Color = int(r)<<16 | int(g)<<8 | int(b)
	embed.Image = &discordgo.MessageEmbedImage{URL: "attachment://color.png"}
	return ctx.ReplyFile(embed, &discordgo.File{Name: "color.png", ContentType: "image/png", Reader: buf})
}

func validChannel(v int64) bool {
	return v >= 0 && v <= 255
}
