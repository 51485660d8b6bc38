// Package mod - /warn, /clearwarns and /getwarns commands
package mod

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	apperrors "github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

const noWarns = "No warns were found for this user!"

// createWarnCommand creates the /warn command
func (h *handlers) createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Warns a user",
		category,
		h.warnHandler,
	).WithOptions(
		userOption("The user to warn"),
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "cause",
			Description: "The reason for the warning",
			Required:    true,
		},
	)
}

// warnHandler handles the /warn command
func (h *handlers) warnHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	cause := ctx.GetStringOption("cause")
	if user == nil || cause == "" {
		return ctx.ReplyError("Both user and cause are required!")
	}

	record := h.warns.Warn(ctx.GuildID(), user.ID, cause)

	desc := fmt.Sprintf("Successfully warned %s for cause:\n%s\nThey now have %d warn(s).", user.String(), cause, record.Warns)
	if err := ctx.ReplyEmbed(discord.SuccessEmbed(desc)); err != nil {
		return err
	}

	guildName := ctx.GuildID()
	if g := ctx.Guild(); g != nil {
		guildName = g.Name
	}
	go func() {
		defer apperrors.RecoverMiddleware()()
		notifyWarn(ctx.Session, user.ID, guildName, cause, record.Warns)
	}()
	return nil
}

// notifyWarn DMs the warned user. Closed DMs are ignored.
func notifyWarn(s *discordgo.Session, userID, guildName, cause string, count int) {
	channel, err := s.UserChannelCreate(userID)
	if err != nil {
		logger.Debug("No se pudo abrir DM con "+userID+": "+err.Error(), "Mod")
		return
	}
	desc := fmt.Sprintf("You have been warned in **%s** for reason: **%s**. You now have **%d** warn(s) in that server.",
		guildName, cause, count)
	if _, err := s.ChannelMessageSendEmbed(channel.ID, discord.NewEmbed("Alert!", desc)); err != nil {
		logger.Debug("No se pudo avisar del warn a "+userID+": "+err.Error(), "Mod")
	}
}

// createClearWarnsCommand creates the /clearwarns command
func (h *handlers) createClearWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"clearwarns",
		"Clear all warns for a user",
		category,
		h.clearWarnsHandler,
	).WithOptions(userOption("The user to clear warns for"))
}

// clearWarnsHandler handles the /clearwarns command
func (h *handlers) clearWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user!")
	}

	if !h.warns.Clear(ctx.GuildID(), user.ID) {
		return ctx.ReplyEmbed(discord.ErrorEmbed(noWarns))
	}
	return ctx.ReplyEmbed(discord.SuccessEmbed(fmt.Sprintf("Successfully removed all warnings for %s!", user.String())))
}

// createGetWarnsCommand creates the /getwarns command
func (h *handlers) createGetWarnsCommand() *discord.Command {
	return discord.NewCommand(
		"getwarns",
		"Gets all warns for a user",
		category,
		h.getWarnsHandler,
	).WithOptions(userOption("The user to get warns for"))
}

// getWarnsHandler handles the /getwarns command
func (h *handlers) getWarnsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("user")
	if user == nil {
		return ctx.ReplyError("You must mention a user!")
	}

	causes := noWarns
	if record, ok := h.warns.Get(ctx.GuildID(), user.ID); ok && len(record.Causes) > 0 {
		causes = strings.Join(record.Causes, "\n")
	}
	return ctx.ReplyEmbed(discord.NewEmbed(fmt.Sprintf("Warns for %s:-", user.String()), causes))
}
