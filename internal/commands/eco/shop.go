package eco

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

func itemOption(description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         "item",
		Description:  description,
		Required:     required,
		Autocomplete: true,
	}
}

// itemAutoComplete suggests catalog tokens matching what the user typed
func itemAutoComplete(ctx *discord.CommandContext) {
	typed := strings.ToLower(ctx.GetStringOption("item"))
	var choices []*discordgo.ApplicationCommandOptionChoice
	for _, item := range economy.Catalog() {
		if strings.Contains(item.Token, typed) || strings.Contains(strings.ToLower(item.Name), typed) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: item.Name, Value: item.Token})
		}
	}

	err := ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	})
	if err != nil {
		logger.Warn("Error respondiendo autocompletado de items: "+err.Error(), "Economy")
	}
}

func itemNotFound(token string) string {
	return fmt.Sprintf("No item named %s was found! Use /shop to see the available items.", token)
}

// itemInfo is the "> ..." block shared by the shop list and detail views
func itemInfo(item economy.Item, owned int) string {
	persistent := "No"
	if item.Persistent {
		persistent = "Yes"
	}
	return fmt.Sprintf("> Description: %s\n"+
		"> Persistent?: %s\n"+
		"> Cost: %s\n"+
		"> Amount owned: %d\n"+
		"> Command to get: ```/buy %s```\n"+
		"> Command to use: ```/use %s```",
		item.Description, persistent, coins(item.Cost), owned, item.Token, item.Token)
}

// createShopCommand creates the /shop command
func (h *handlers) createShopCommand() *discord.Command {
	return discord.NewCommand(
		"shop",
		"Shows the shop, or information about one item",
		category,
		h.shopHandler,
	).WithOptions(itemOption("The item codename to show", false)).
		WithAutoComplete(itemAutoComplete)
}

// shopHandler handles the /shop command
func (h *handlers) shopHandler(ctx *discord.CommandContext) error {
	userID := ctx.UserID()

	if token := ctx.GetStringOption("item"); token != "" {
		item, ok := economy.FindItem(token)
		if !ok {
			return ctx.ReplyError(itemNotFound(token))
		}
		title := fmt.Sprintf("Maxis Shop - Information about %s %s", item.Emoji, item.Name)
		return ctx.ReplyEmbed(discord.NewEmbed(title, itemInfo(item, h.bank.Owned(userID, item.Name))))
	}

	embed := discord.NewEmbed("Maxis Shop", "")
	for i, item := range economy.Catalog() {
		name := fmt.Sprintf("%d) %s %s", i+1, item.Emoji, item.Name)
		embed.Fields = append(embed.Fields, discord.Field(name, itemInfo(item, h.bank.Owned(userID, item.Name)), false))
	}
	return ctx.ReplyEmbed(embed)
}

// createBuyCommand creates the /buy command
func (h *handlers) createBuyCommand() *discord.Command {
	return discord.NewCommand(
		"buy",
		"Buy an item from the shop",
		category,
		h.buyHandler,
	).WithOptions(itemOption("The item codename to buy", true)).
		WithAutoComplete(itemAutoComplete)
}

// buyHandler handles the /buy command
func (h *handlers) buyHandler(ctx *discord.CommandContext) error {
	token := ctx.GetStringOption("item")
	item, count, err := h.bank.Buy(ctx.UserID(), token)
	switch {
	case errors.Is(err, economy.ErrItemNotFound):
		return ctx.ReplyError(itemNotFound(token))
	case errors.Is(err, economy.ErrAlreadyOwned):
		return ctx.ReplyError(fmt.Sprintf("You already own this item! Use it with ```/use %s```.", item.Token))
	case err != nil:
		return replyEconomyError(ctx, err)
	}

	desc := fmt.Sprintf("%s purchased 1 %s %s.\nNow you have %d %s %s(s).",
		ctx.DisplayName(), item.Emoji, item.Name, count, item.Emoji, item.Name)
	return ctx.ReplyEmbed(discord.SuccessEmbed(desc))
}
