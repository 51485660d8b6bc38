package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createPingCommand creates the /ping command
func createPingCommand() *discord.Command {
	return discord.NewCommand(
		"ping",
		"Displays bot latency",
		category,
		pingHandler,
	)
}

// pingHandler handles the /ping command
func pingHandler(ctx *discord.CommandContext) error {
	latency := ctx.Client.Latency().Milliseconds()
	return ctx.ReplyEmbed(discord.NewEmbed("Pong!", fmt.Sprintf("Latency is %d ms.", latency)))
}

// createHelloCommand creates the /hello command
func createHelloCommand() *discord.Command {
	return discord.NewCommand(
		"hello",
		"Says hello to the user",
		category,
		helloHandler,
	)
}

// helloHandler handles the /hello command
func helloHandler(ctx *discord.CommandContext) error {
	desc := fmt.Sprintf("Hello there, %s! Maxis here at your service. Type '/help' for more information on supported commands.",
		ctx.User().Username)
	return ctx.ReplyEmbed(discord.NewEmbed("Hello!", desc))
}

// createDatetimeCommand creates the /datetime command
func createDatetimeCommand() *discord.Command {
	return discord.NewCommand(
		"datetime",
		"Displays the current UTC or GMT date and time",
		category,
		datetimeHandler,
	)
}

// datetimeHandler handles the /datetime command
func datetimeHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyEmbed(datetimeEmbed(time.Now()))
}

func datetimeEmbed(now time.Time) *discordgo.MessageEmbed {
	embed := discord.NewEmbed("Current Time:-", "")
	embed.Fields = append(embed.Fields,
		discord.Field("Local Time", discordTimestamp(now), true),
		discord.Field("UTC/GMT", now.UTC().Format("02 January 2006 03:04:05 PM"), true),
	)
	return embed
}

// discordTimestamp renders t in every reader's own timezone
func discordTimestamp(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "None"
	}
	return s
}
