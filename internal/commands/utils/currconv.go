package utils

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
	"github.com/goccy/go-json"
)

const (
	exchangeAPIURL     = "https://v6.exchangerate-api.com/v6"
	exchangeAPITimeout = 10 * time.Second
	maxChoices         = 25
)

//go:embed currencies.json
var currenciesJSON []byte

type currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var currencies = mustLoadCurrencies(currenciesJSON)

func mustLoadCurrencies(data []byte) []currency {
	var file struct {
		Currencies []currency `json:"currencies"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		panic("currencies.json: " + err.Error())
	}
	return file.Currencies
}

func validCurrency(code string) bool {
	for _, c := range currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

func invalidCurrencyMessage() string {
	codes := make([]string, 0, 10)
	for _, c := range currencies[:min(10, len(currencies))] {
		codes = append(codes, c.Code)
	}
	return fmt.Sprintf("Invalid currency code! Valid codes: %s...", strings.Join(codes, ", "))
}

// matchCurrencies returns up to 25 currencies whose code or name contains typed
func matchCurrencies(typed string) []*discordgo.ApplicationCommandOptionChoice {
	typed = strings.ToLower(strings.TrimSpace(typed))
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	for _, c := range currencies {
		if len(choices) == maxChoices {
			break
		}
		if strings.Contains(strings.ToLower(c.Code), typed) || strings.Contains(strings.ToLower(c.Name), typed) {
			choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
				Name:  c.Code + " - " + c.Name,
				Value: c.Code,
			})
		}
	}
	return choices
}

func currencyOption(name, description string) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     true,
		Autocomplete: true,
	}
}

// createCurrConvCommand creates the /currconv command
func (h *handlers) createCurrConvCommand() *discord.Command {
	return discord.NewCommand(
		"currconv",
		"Converts one currency to another",
		category,
		h.currConvHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "convert_amount",
			Description: "The amount of money to convert",
			Required:    true,
		},
		currencyOption("from_currency", "The currency of the given amount (e.g., USD, EUR)"),
		currencyOption("to_currency", "The currency to convert the amount to (e.g., USD, EUR)"),
	).WithAutoComplete(currencyAutoComplete)
}

func currencyAutoComplete(ctx *discord.CommandContext) {
	typed := ""
	for _, opt := range ctx.Interaction.ApplicationCommandData().Options {
		if opt.Focused {
			typed = opt.StringValue()
		}
	}

	err := ctx.Session.InteractionRespond(ctx.Interaction.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: matchCurrencies(typed)},
	})
	if err != nil {
		logger.Warn("Error respondiendo autocompletado de divisas: "+err.Error(), "Utils")
	}
}

type conversionResponse struct {
	Result           string  `json:"result"`
	ErrorType        string  `json:"error-type"`
	ConversionResult float64 `json:"conversion_result"`
}

// currConvHandler handles the /currconv command
func (h *handlers) currConvHandler(ctx *discord.CommandContext) error {
	if err := ctx.Defer(); err != nil {
		return err
	}

	amount := ctx.GetFloatOption("convert_amount")
	from := strings.ToUpper(strings.TrimSpace(ctx.GetStringOption("from_currency")))
	to := strings.ToUpper(strings.TrimSpace(ctx.GetStringOption("to_currency")))

	if !validCurrency(from) || !validCurrency(to) {
		return ctx.EditReplyEmbed(discord.ErrorEmbed(invalidCurrencyMessage()))
	}
	if h.ExchangeAPIKey == "" {
		return ctx.EditReplyEmbed(discord.ErrorEmbed("Exchange rate API key not configured! Please set EXAPI environment variable."))
	}

	converted, msg := h.convert(amount, from, to)
	if msg != "" {
		return ctx.EditReplyEmbed(discord.ErrorEmbed(msg))
	}
	return ctx.EditReplyEmbed(discord.NewEmbed(
		fmt.Sprintf("%s to %s conversion:-", from, to),
		fmt.Sprintf("%s %s = %s %s", formatNumber(amount), from, formatNumber(converted), to),
	))
}

// convert asks the exchange rate API for the pair conversion; msg is the
// user-facing error when the lookup fails
func (h *handlers) convert(amount float64, from, to string) (float64, string) {
	ctx, cancel := context.WithTimeout(context.Background(), exchangeAPITimeout)
	defer cancel()

	url := strings.Join([]string{exchangeAPIURL, h.ExchangeAPIKey, "pair", from, to, strconv.FormatFloat(amount, 'f', -1, 64)}, "/")
	resp, err := h.HTTP.R().SetContext(ctx).Get(url)
	if err != nil {
		logger.Error("Error en conversión de divisas: "+err.Error(), "Utils")
		return 0, "Conversion failed! Please try again."
	}
	if resp.StatusCode() != 200 {
		logger.Warn(fmt.Sprintf("API de divisas respondió %d", resp.StatusCode()), "Utils")
		return 0, "Failed to connect to exchange rate API!"
	}

	var body conversionResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		logger.Error("Respuesta inválida de la API de divisas: "+err.Error(), "Utils")
		return 0, "Conversion failed! Please try again."
	}
	if body.Result == "error" {
		logger.Warn("Conversión rechazada: "+body.ErrorType, "Utils")
		return 0, "Conversion failed!"
	}
	return body.ConversionResult, ""
}
