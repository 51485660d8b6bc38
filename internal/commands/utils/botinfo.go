package utils

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/config"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const supportServer = "https://discord.gg/t79ZyuHr5K"

// createBotInfoCommand creates the /botinfo command
func createBotInfoCommand() *discord.Command {
	return discord.NewCommand(
		"botinfo",
		"Shows information about Maxis",
		category,
		botInfoHandler,
	)
}

// botInfoHandler handles the /botinfo command
func botInfoHandler(ctx *discord.CommandContext) error {
	botID := ctx.Client.BotUserID()

	roles := "None"
	isAdmin := false
	if guildID := ctx.GuildID(); guildID != "" {
		if member, err := ctx.Session.State.Member(guildID, botID); err == nil {
			roles = orNone(strings.Join(roleMentions(member.Roles), "\n"))
		}
		isAdmin = botIsAdmin(ctx.Session.State, botID, ctx.ChannelID())
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	embed := discord.NewEmbed("Maxis Status:-", "")
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("Server count", fmt.Sprintf("%d", ctx.Client.GuildCount()), true),
		discord.Field("User count", fmt.Sprintf("%d", ctx.Client.MemberCount()), true),
		discord.Field("Ping", fmt.Sprintf("Gateway ping: %d ms", ctx.Client.Latency().Milliseconds()), true),
		discord.Field("Roles", roles, true),
		discord.Field("Is bot admin?", yesNo(isAdmin), true),
		discord.Field("Invite Link", discord.InviteURL(botID), true),
		discord.Field("Version", config.Version, true),
		discord.Field("Bot discord server", supportServer, true),
		discord.Field("Bot type", "Utility, Moderation and Economy Bot", true),
		discord.Field("Developer", "PancyStudios", true),
		discord.Field("Go / DiscordGo", strings.TrimPrefix(runtime.Version(), "go")+" / "+discordgo.VERSION, true),
		discord.Field("RAM", fmt.Sprintf("%.2f MB", float64(m.Alloc)/1024/1024), true),
		discord.Field("Uptime", formatDuration(time.Since(ctx.Client.StartTime)), true),
	}
	return ctx.ReplyEmbed(embed)
}

func roleMentions(roleIDs []string) []string {
	mentions := make([]string, 0, len(roleIDs))
	for _, id := range roleIDs {
		mentions = append(mentions, "<@&"+id+">")
	}
	return mentions
}

// formatDuration formats a time.Duration into a human-readable string
func formatDuration(dur time.Duration) string {
	days := int(dur.Hours() / 24)
	hours := int(dur.Hours()) % 24
	minutes := int(dur.Minutes()) % 60
	seconds := int(dur.Seconds()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	if minutes > 0 {
		parts = append(parts, fmt.Sprintf("%dm", minutes))
	}
	if seconds > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%ds", seconds))
	}

	return strings.Join(parts, " ")
}

// botIsAdmin reports whether the bot holds Administrator where the command ran
func botIsAdmin(state *discordgo.State, botID, channelID string) bool {
	perms, err := state.UserChannelPermissions(botID, channelID)
	return err == nil && perms&discordgo.PermissionAdministrator != 0
}
