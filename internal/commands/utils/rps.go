package utils

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const rpsPrefix = "rps_"

type rpsChoice int

const (
	rock rpsChoice = iota
	paper
	scissors
)

var rpsNames = []string{"Rock", "Paper", "Scissors"}

func (c rpsChoice) String() string {
	return rpsNames[c]
}

func parseRPS(s string) (rpsChoice, bool) {
	for i, name := range rpsNames {
		if strings.EqualFold(s, name) {
			return rpsChoice(i), true
		}
	}
	return 0, false
}

type rpsOutcome int

const (
	rpsTie rpsOutcome = iota
	rpsUserWins
	rpsBotWins
)

// rpsResult: each choice beats the one before it, wrapping around
func rpsResult(user, bot rpsChoice) rpsOutcome {
	switch {
	case user == bot:
		return rpsTie
	case user == (bot+1)%3:
		return rpsUserWins
	default:
		return rpsBotWins
	}
}

func rpsEmbed(user, bot rpsChoice) *discordgo.MessageEmbed {
	title := map[rpsOutcome]string{
		rpsTie:      "Tie!",
		rpsUserWins: "You win!",
		rpsBotWins:  "Bot wins!",
	}[rpsResult(user, bot)]
	return discord.NewEmbed(title, fmt.Sprintf("You chose %s and bot chose %s.", user, bot))
}

func botChoice() rpsChoice {
	return rpsChoice(rand.IntN(3))
}

// createRPSCommand creates the /rps command
func createRPSCommand() *discord.Command {
	return discord.NewCommand(
		"rps",
		`Play "Rock Paper Scissors" with the bot`,
		category,
		rpsHandler,
	).WithOptions(&discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "choice",
		Description: "Your choice (rock, paper, or scissors)",
		Required:    false,
		Choices: []*discordgo.ApplicationCommandOptionChoice{
			{Name: "Rock", Value: "rock"},
			{Name: "Paper", Value: "paper"},
			{Name: "Scissors", Value: "scissors"},
		},
	})
}

// rpsHandler plays right away, or offers three buttons when no choice was given
func rpsHandler(ctx *discord.CommandContext) error {
	if choice, ok := parseRPS(ctx.GetStringOption("choice")); ok {
		return ctx.ReplyEmbed(rpsEmbed(choice, botChoice()))
	}

	buttons := make([]discordgo.MessageComponent, 0, len(rpsNames))
	for _, name := range rpsNames {
		buttons = append(buttons, discordgo.Button{
			Label:    name,
			Style:    discordgo.SuccessButton,
			CustomID: rpsPrefix + strings.ToLower(name),
		})
	}
	embed := discord.NewEmbed("Rock Paper Scissors!", "Select a choice (rock/paper/scissors).")
	return ctx.ReplyEmbedComponents(embed, discordgo.ActionsRow{Components: buttons})
}

// rpsButtonHandler plays the clicked choice and removes the buttons
func rpsButtonHandler(ctx *discord.CommandContext) error {
	choice, ok := parseRPS(strings.TrimPrefix(ctx.CustomID(), rpsPrefix))
	if !ok {
		return ctx.ReplyError("Invalid choice!")
	}
	embed := rpsEmbed(choice, botChoice())
	return ctx.UpdateMessage("", []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{})
}
