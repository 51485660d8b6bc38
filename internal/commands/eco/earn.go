package eco

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

// createClaimCommand creates /daily, /weekly or /monthly
func (h *handlers) createClaimCommand(kind economy.Kind) *discord.Command {
	return discord.NewCommand(
		kind.String(),
		fmt.Sprintf("Claim your %s earnings", kind),
		category,
		func(ctx *discord.CommandContext) error {
			return h.claimHandler(ctx, kind)
		},
	)
}

// claimHandler handles the periodic claims
func (h *handlers) claimHandler(ctx *discord.CommandContext, kind economy.Kind) error {
	earning, err := h.bank.Claim(ctx.UserID(), kind)
	if err != nil {
		return replyEconomyError(ctx, err)
	}

	name := ctx.DisplayName()
	title := fmt.Sprintf("%s's %s Earnings", name, capitalize(kind.String()))
	desc := fmt.Sprintf("%s got their %s earnings: %s", name, kind, coins(earning.Amount))
	return ctx.ReplyEmbed(discord.NewEmbed(title, desc))
}

// createWorkCommand creates the /work command
func (h *handlers) createWorkCommand() *discord.Command {
	return discord.NewCommand(
		"work",
		"Work to earn some money",
		category,
		h.workHandler,
	)
}

// workHandler handles the /work command
func (h *handlers) workHandler(ctx *discord.CommandContext) error {
	earning, err := h.bank.Claim(ctx.UserID(), economy.KindWork)
	if err != nil {
		return replyEconomyError(ctx, err)
	}

	name := ctx.DisplayName()
	desc := fmt.Sprintf("%s %s %s", name, earning.Phrase, coins(earning.Amount))
	return ctx.ReplyEmbed(discord.NewEmbed(name+" Worked", desc))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
