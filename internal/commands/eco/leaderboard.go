package eco

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
)

const leaderboardSize = 5

// createLeaderboardCommand creates the /leaderboard command
func (h *handlers) createLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"leaderboard",
		"Shows the richest users of this server",
		category,
		h.leaderboardHandler,
	).InGuildOnly()
}

// leaderboardHandler handles the /leaderboard command
func (h *handlers) leaderboardHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	members, err := ctx.Client.GuildMembers(ctx.GuildID())
	if err != nil && len(members) == 0 {
		return err
	}

	names := make(map[string]string, len(members))
	for _, m := range members {
		if m.User == nil || m.User.Bot {
			continue
		}
		name := m.Nick
		if name == "" {
			name = discord.DisplayName(m.User)
		}
		names[m.User.ID] = name
	}

	top := h.bank.Top(leaderboardSize, func(userID string) bool {
		_, ok := names[userID]
		return ok
	})
	if len(top) == 0 {
		return ctx.EditReplyEmbed(discord.ErrorEmbed("No one has more than :coin: 0 in this server!"))
	}

	guildName := "this server"
	if g := ctx.Guild(); g != nil {
		guildName = g.Name
	}
	title := fmt.Sprintf("Top %d richest user(s) in %s:-", len(top), guildName)
	return ctx.EditReplyEmbed(discord.NewEmbed(title, formatLeaderboard(top, func(id string) string { return names[id] })))
}

// createGlobalLeaderboardCommand creates the /globalleaderboard command
func (h *handlers) createGlobalLeaderboardCommand() *discord.Command {
	return discord.NewCommand(
		"globalleaderboard",
		"Shows the richest users of Maxis",
		category,
		h.globalLeaderboardHandler,
	)
}

// globalLeaderboardHandler handles the /globalleaderboard command
func (h *handlers) globalLeaderboardHandler(ctx *discord.CommandContext) error {
	top := h.bank.Top(leaderboardSize, nil)
	if len(top) == 0 {
		return ctx.ReplyEmbed(discord.ErrorEmbed("No one has more than :coin: 0 in our database!"))
	}

	if err := ctx.Defer(); err != nil {
		return err
	}
	title := fmt.Sprintf("Top %d richest user(s) of Maxis:-", len(top))
	return ctx.EditReplyEmbed(discord.NewEmbed(title, formatLeaderboard(top, ctx.Client.UserName)))
}

// formatLeaderboard renders one "{i}) {name} (:coin: {bal})" line per account
func formatLeaderboard(accounts []economy.Account, name func(userID string) string) string {
	lines := make([]string, 0, len(accounts))
	for i, acc := range accounts {
		lines = append(lines, fmt.Sprintf("%d) %s (%s)", i+1, name(acc.UserID), coins(acc.Balance)))
	}
	return strings.Join(lines, "\n")
}
