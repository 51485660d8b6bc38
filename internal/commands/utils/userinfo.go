package utils

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createUserInfoCommand creates the /userinfo command
func (h *handlers) createUserInfoCommand() *discord.Command {
	return discord.NewCommand(
		"userinfo",
		"Shows mentioned user's info, or yours if not specified",
		category,
		h.userInfoHandler,
	).WithOptions(&discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "The user whose information you want to see",
		Required:    false,
	})
}

// userInfoHandler handles the /userinfo command
func (h *handlers) userInfoHandler(ctx *discord.CommandContext) error {
	user := ctx.User()
	member := ctx.Member()
	if opt := ctx.GetUserOption("user"); opt != nil {
		user = opt
		member = resolvedMember(ctx, opt.ID)
	}

	name := user.Username
	if ctx.GuildID() != "" {
		name = discord.DisplayName(user)
		if member != nil && member.Nick != "" {
			name = member.Nick
		}
	}

	embed := discord.NewEmbed(fmt.Sprintf("Information about %s:-", name), "")
	embed.Image = &discordgo.MessageEmbedImage{URL: user.AvatarURL("")}
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("Discriminated name:", user.String(), true),
		discord.Field("User ID:", user.ID, true),
		discord.Field("Is bot?:", yesNo(user.Bot), true),
	}
	if created, err := discordgo.SnowflakeTimestamp(user.ID); err == nil {
		embed.Fields = append(embed.Fields, discord.Field("Account created:", discordTimestamp(created), true))
	}

	roles := "None"
	isAdmin := false
	if member != nil {
		if !member.JoinedAt.IsZero() {
			embed.Fields = append(embed.Fields, discord.Field("Joined server:", discordTimestamp(member.JoinedAt), true))
		}
		roles = orNone(strings.Join(reversed(roleMentions(member.Roles)), "\n"))
		isAdmin = member.Permissions&discordgo.PermissionAdministrator != 0
	}
	embed.Fields = append(embed.Fields,
		discord.Field("Roles:", roles, true),
		discord.Field("Is server admin?:", yesNo(isAdmin), true),
	)
	if h.OwnerID != "" && user.ID == h.OwnerID {
		embed.Fields = append(embed.Fields, discord.Field("Is bot owner?:", "Yes", true))
	}
	return ctx.ReplyEmbed(embed)
}

// resolvedMember returns the member data Discord sent along with a user option
func resolvedMember(ctx *discord.CommandContext, userID string) *discordgo.Member {
	if ctx.GuildID() == "" {
		return nil
	}
	data := ctx.Interaction.ApplicationCommandData()
	if data.Resolved != nil {
		if m, ok := data.Resolved.Members[userID]; ok {
			return m
		}
	}
	if m, err := ctx.Session.State.Member(ctx.GuildID(), userID); err == nil {
		return m
	}
	return nil
}

func reversed(items []string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
