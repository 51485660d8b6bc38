package eco

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	apperrors "github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

const effectTimeout = 15 * time.Second

// createUseCommand creates the /use command
func (h *handlers) createUseCommand() *discord.Command {
	return discord.NewCommand(
		"use",
		"Use an item in your inventory",
		category,
		h.useHandler,
	).WithOptions(itemOption("The item codename to use", true)).
		WithAutoComplete(itemAutoComplete)
}

// useHandler handles the /use command
func (h *handlers) useHandler(ctx *discord.CommandContext) error {
	token := ctx.GetStringOption("item")
	item, err := h.bank.Use(ctx.UserID(), token)
	switch {
	case errors.Is(err, economy.ErrItemNotFound):
		return ctx.ReplyError(itemNotFound(token))
	case err != nil:
		return replyEconomyError(ctx, err)
	}

	desc := item.UseMessage
	if !item.Persistent {
		desc = fmt.Sprintf("%s\nYou now have %d %s %s(s).",
			item.UseMessage, h.bank.Owned(ctx.UserID(), item.Name), item.Emoji, item.Name)
	}
	title := fmt.Sprintf("%s used %s %s", ctx.DisplayName(), item.Emoji, item.Name)
	if err := ctx.ReplyEmbed(discord.NewEmbed(title, desc)); err != nil {
		return err
	}

	go func() {
		defer apperrors.RecoverMiddleware()()
		effectCtx, cancel := context.WithTimeout(context.Background(), effectTimeout)
		defer cancel()
		if err := h.bank.RunEffect(effectCtx, item, ctx); err != nil {
			logger.Error("Error ejecutando el efecto de "+item.Name+": "+err.Error(), "Economy")
		}
	}()
	return nil
}
