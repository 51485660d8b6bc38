package eco

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// Custom id prefixes. The owner id follows the prefix.
const (
	laptopCodePrefix   = "laptop_code_"
	laptopOffPrefix    = "laptop_off_"
	laptopResultPrefix = "laptop_code_result_"
	laptopAnswerInput  = "laptop_code_answer"
)

// laptopEffect posts the PC panel to the channel the laptop was used in
func (h *handlers) laptopEffect(client *discord.ExtendedClient) economy.EffectFunc {
	return func(_ context.Context, actor economy.ActorContext) error {
		name := client.UserName(actor.UserID())
		if named, ok := actor.(interface{ DisplayName() string }); ok {
			name = named.DisplayName()
		}

		_, err := client.Session.ChannelMessageSendComplex(actor.ChannelID(), &discordgo.MessageSend{
			Embeds:     []*discordgo.MessageEmbed{laptopEmbed(name, time.Now().UTC())},
			Components: laptopButtons(actor.UserID()),
		})
		return err
	}
}

func laptopEmbed(name string, now time.Time) *discordgo.MessageEmbed {
	embed := discord.NewEmbed(name+"'s PC", "Press a button below to perform the desired action.")
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("OS", "MaxisOS", true),
		discord.Field("Time (UTC or GMT)", strings.ToUpper(now.Format("02 January 2006 03:04:05 PM")), true),
		discord.Field("MaxisVPN Status", "Connected", true),
	}
	return embed
}

func laptopButtons(userID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Run Hacker Code", Style: discordgo.DangerButton, CustomID: laptopCodePrefix + userID},
			discordgo.Button{Label: "Shut Down", Style: discordgo.DangerButton, CustomID: laptopOffPrefix + userID},
		}},
	}
}

// laptopOwner checks that the button belongs to the user pressing it
func laptopOwner(ctx *discord.CommandContext, prefix string) bool {
	return strings.TrimPrefix(ctx.CustomID(), prefix) == ctx.UserID()
}

// laptopCodeHandler opens the puzzle modal
func (h *handlers) laptopCodeHandler(ctx *discord.CommandContext) error {
	if !laptopOwner(ctx, laptopCodePrefix) {
		return ctx.ReplyError("You can't use someone else's PC!")
	}
	if err := h.bank.CanHack(ctx.UserID()); err != nil {
		return ctx.ReplyError("You don't have the Hacker Code! Buy it from the shop.")
	}

	puzzle := h.bank.IssuePuzzle(ctx.UserID())
	return ctx.ShowModal(
		laptopResultPrefix+ctx.UserID(),
		"What's the next number in the pattern?",
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{
				CustomID:    laptopAnswerInput,
				Label:       puzzle.Question,
				Style:       discordgo.TextInputShort,
				Placeholder: "Enter the answer",
				Required:    true,
			},
		}},
	)
}

// laptopOffHandler replaces the panel with a shut down notice
func (h *handlers) laptopOffHandler(ctx *discord.CommandContext) error {
	if !laptopOwner(ctx, laptopOffPrefix) {
		return ctx.ReplyError("You can't use someone else's PC!")
	}
	embed := discord.NewEmbed("You shut down the laptop.", "")
	return ctx.UpdateMessage("", []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{})
}

// laptopResultHandler settles a submitted puzzle answer
func (h *handlers) laptopResultHandler(ctx *discord.CommandContext) error {
	if !laptopOwner(ctx, laptopResultPrefix) {
		return ctx.ReplyError("You can't use someone else's PC!")
	}

	result, err := h.bank.SolvePuzzle(ctx.UserID(), ctx.ModalValue(laptopAnswerInput))
	if err != nil {
		return replyEconomyError(ctx, err)
	}
	return ctx.ReplyEmbed(hackResultEmbed(result))
}

func hackResultEmbed(result economy.HackResult) *discordgo.MessageEmbed {
	switch {
	case result.Won:
		return discord.SuccessEmbed(fmt.Sprintf("Hacking successful! You got %s", coins(economy.HackPrize)))
	case result.Malformed:
		return discord.NewEmbed("Failure!", fmt.Sprintf("Hacking failed due to incorrect input type. You lost %s", coins(economy.HackPrize)))
	default:
		return discord.NewEmbed("Failure!", fmt.Sprintf("Hacking failed due to wrong answer. You lost %s", coins(economy.HackPrize)))
	}
}
