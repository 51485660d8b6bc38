package eco

import (
	"errors"
	"fmt"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

// createRobCommand creates the /rob command
func (h *handlers) createRobCommand() *discord.Command {
	return discord.NewCommand(
		"rob",
		"Rob money from another user",
		category,
		h.robHandler,
	).WithOptions(userOption("user", "The user to rob", true)).InGuildOnly()
}

// robHandler handles the /rob command
func (h *handlers) robHandler(ctx *discord.CommandContext) error {
	victim := ctx.GetUserOption("user")
	if victim == nil {
		return ctx.ReplyError("You must mention a user to rob!")
	}

	amount, err := h.bank.Rob(ctx.UserID(), economy.Target{UserID: victim.ID, Bot: victim.Bot})
	if err != nil {
		switch {
		case errors.Is(err, economy.ErrSelfTarget):
			return ctx.ReplyError("You can't rob yourself!")
		case errors.Is(err, economy.ErrBotTarget):
			return ctx.ReplyError("You can't rob bots!")
		}
		return replyEconomyError(ctx, err)
	}

	desc := fmt.Sprintf("%s successfully robbed %s, and earned %s.",
		ctx.DisplayName(), discord.DisplayName(victim), coins(amount))
	return ctx.ReplyEmbed(discord.SuccessEmbed(desc))
}
