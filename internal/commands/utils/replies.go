package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/internal/replies"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

func textOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    true,
	}
}

// createReplyCommand creates the /reply command
func (h *handlers) createReplyCommand() *discord.Command {
	return discord.NewCommand(
		"reply",
		"Set a custom reply",
		category,
		h.replyHandler,
	).WithOptions(
		textOption("text", "The text to trigger the reply"),
		textOption("reply", "The reply message"),
	)
}

// replyHandler handles the /reply command
func (h *handlers) replyHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("text")
	reply := ctx.GetStringOption("reply")

	if err := h.Replies.Set(text, reply); err != nil {
		if errors.Is(err, replies.ErrEmpty) {
			return ctx.ReplyError("Both text and reply are required!")
		}
		return err
	}

	desc := fmt.Sprintf("Successfully set custom reply! Bot will now reply with '%s' when any message contains '%s'.", reply, text)
	return ctx.ReplyEmbed(discord.SuccessEmbed(desc))
}

// createNoReplyCommand creates the /noreply command
func (h *handlers) createNoReplyCommand() *discord.Command {
	return discord.NewCommand(
		"noreply",
		"Disable a custom reply",
		category,
		h.noReplyHandler,
	).WithOptions(textOption("text", "The text of the reply to disable"))
}

// noReplyHandler handles the /noreply command
func (h *handlers) noReplyHandler(ctx *discord.CommandContext) error {
	text := ctx.GetStringOption("text")
	trigger, ok := h.Replies.Remove(text)
	if !ok {
		return ctx.ReplyError(fmt.Sprintf("No reply matching '%s' was found!", text))
	}
	return ctx.ReplyEmbed(discord.SuccessEmbed(fmt.Sprintf("Successfully disabled custom reply %s!", trigger)))
}

// createRepliesCommand creates the /replies command
func (h *handlers) createRepliesCommand() *discord.Command {
	return discord.NewCommand(
		"replies",
		"Display all custom replies",
		category,
		h.repliesHandler,
	)
}

// repliesHandler handles the /replies command
func (h *handlers) repliesHandler(ctx *discord.CommandContext) error {
	return ctx.ReplyEmbed(discord.NewEmbed("Currently set custom replies:-", formatReplies(h.Replies.List())))
}

func formatReplies(list []replies.Reply) string {
	if len(list) == 0 {
		return "No custom replies have been set up yet!"
	}
	lines := make([]string, 0, len(list))
	for _, r := range list {
		lines = append(lines, r.Trigger+": "+r.Text)
	}
	return strings.Join(lines, "\n")
}
