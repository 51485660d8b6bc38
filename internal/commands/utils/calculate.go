package utils

import (
	"fmt"
	"strconv"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCalculateCommand creates the /calculate command
func createCalculateCommand() *discord.Command {
	return discord.NewCommand(
		"calculate",
		"Performs calculations on two numbers",
		category,
		calculateHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "number_1",
			Description: "The number 1 of the problem",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "operation_symbol",
			Description: "The operation type to perform",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "add", Value: "+"},
				{Name: "subtract", Value: "-"},
				{Name: "multiply", Value: "*"},
				{Name: "divide", Value: "/"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionNumber,
			Name:        "number_2",
			Description: "The number 2 of the problem",
			Required:    true,
		},
	)
}

// calculateHandler handles the /calculate command
func calculateHandler(ctx *discord.CommandContext) error {
	n1 := ctx.GetFloatOption("number_1")
	n2 := ctx.GetFloatOption("number_2")
	op := ctx.GetStringOption("operation_symbol")
	return ctx.ReplyEmbed(discord.NewEmbed(calculate(n1, op, n2), ""))
}

// calculate renders "{n1} {op} {n2} = {result}"
func calculate(n1 float64, op string, n2 float64) string {
	var result string
	switch op {
	case "+":
		result = formatNumber(n1 + n2)
	case "-":
		result = formatNumber(n1 - n2)
	case "*":
		result = formatNumber(n1 * n2)
	case "/":
		if n2 == 0 {
			result = "Cannot divide by zero."
		} else {
			result = formatNumber(n1 / n2)
		}
	default:
		result = "Not a valid operation symbol."
	}
	return fmt.Sprintf("%s %s %s = %s", formatNumber(n1), op, formatNumber(n2), result)
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
