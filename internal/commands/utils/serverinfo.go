package utils

import (
	"fmt"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createServerInfoCommand creates the /serverinfo command
func createServerInfoCommand() *discord.Command {
	return discord.NewCommand(
		"serverinfo",
		"Shows the server's info on which command is run",
		category,
		serverInfoHandler,
	).InGuildOnly()
}

// serverInfoHandler handles the /serverinfo command
func serverInfoHandler(ctx *discord.CommandContext) error {
	guild := ctx.Guild()
	if guild == nil {
		return ctx.ReplyError("This command only works in servers!")
	}
	if err := ctx.Defer(); err != nil {
		return err
	}

	members, err := ctx.Client.GuildMembers(guild.ID)
	if err != nil && len(members) == 0 {
		members = guild.Members
	}

	channels := guild.Channels
	if len(channels) == 0 {
		channels, _ = ctx.Session.GuildChannels(guild.ID)
	}

	return ctx.EditReplyEmbed(serverInfoEmbed(guild, members, channels))
}

func serverInfoEmbed(guild *discordgo.Guild, members []*discordgo.Member, channels []*discordgo.Channel) *discordgo.MessageEmbed {
	humans, bots := memberRatio(members)
	text, voice := channelRatio(channels)

	memberCount := guild.MemberCount
	if memberCount == 0 {
		memberCount = len(members)
	}

	owner := "Not found!"
	if guild.OwnerID != "" {
		owner = "<@" + guild.OwnerID + ">"
	}

	embed := discord.NewEmbed(fmt.Sprintf("Information about %s:-", guild.Name), "")
	if guild.Icon != "" {
		embed.Image = &discordgo.MessageEmbedImage{URL: guild.IconURL("")}
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("Server ID:", guild.ID, true),
		discord.Field("Server owner:", owner, true),
		discord.Field("Server description:", orNone(guild.Description), false),
	}
	if created, err := discordgo.SnowflakeTimestamp(guild.ID); err == nil {
		embed.Fields = append(embed.Fields, discord.Field("Created on:", discordTimestamp(created), false))
	}
	embed.Fields = append(embed.Fields,
		discord.Field("Members count:", fmt.Sprintf("%d", memberCount), true),
		discord.Field("Members ratio:", fmt.Sprintf("%d Humans\n%d Bots", humans, bots), true),
		discord.Field("Roles count:", fmt.Sprintf("%d", len(guild.Roles)), true),
		discord.Field("Channels count:", fmt.Sprintf("%d", len(channels)), true),
		discord.Field("Channels ratio:", fmt.Sprintf("%d Text\n%d Voice", text, voice), true),
		discord.Field("Boosts count:", fmt.Sprintf("%d", guild.PremiumSubscriptionCount), true),
		discord.Field("Boost level:", fmt.Sprintf("%d", guild.PremiumTier), true),
		discord.Field("Emojis count:", fmt.Sprintf("%d", len(guild.Emojis)), true),
		discord.Field("Verification level:", verificationLevel(guild.VerificationLevel), true),
	)
	return embed
}

func memberRatio(members []*discordgo.Member) (humans, bots int) {
	for _, m := range members {
		if m.User != nil && m.User.Bot {
			bots++
		} else {
			humans++
		}
	}
	return humans, bots
}

func channelRatio(channels []*discordgo.Channel) (text, voice int) {
	for _, c := range channels {
		switch c.Type {
		case discordgo.ChannelTypeGuildText:
			text++
		case discordgo.ChannelTypeGuildVoice:
			voice++
		}
	}
	return text, voice
}

func verificationLevel(level discordgo.VerificationLevel) string {
	switch level {
	case discordgo.VerificationLevelNone:
		return "none"
	case discordgo.VerificationLevelLow:
		return "low"
	case discordgo.VerificationLevelMedium:
		return "medium"
	case discordgo.VerificationLevelHigh:
		return "high"
	case discordgo.VerificationLevelVeryHigh:
		return "highest"
	}
	return "unknown"
}
