package utils

import (
	"sort"
	"strings"

	"github.com/PancyStudios/MaxisGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

const helpSelectID = "help_category"

const helpText = `Maxis is a multipurpose bot, currently under active development.
To get help about commands, select one category below or use '/help (category)', where categories include:

1) Utility ` + "```/help utility```" + `
2) Moderation ` + "```/help moderation```" + `
3) Economy ` + "```/help economy```" + `

For more information on the bot, how to use it, or queries about, contact us on our official discord server:-
https://discord.gg/t79ZyuHr5K/
Or visit Maxis's website:-
https://user783667580106702848.pepich.de/`

// helpCategories keeps the select menu order
var helpCategories = []struct {
	value string
	label string
	title string
}{
	{"utility", "Utility", "Maxis Utility commands:-"},
	{"moderation", "Moderation", "Maxis Moderation commands:-"},
	{"economy", "Economy", "Maxis Economy commands:-"},
}

// createHelpCommand creates the /help command
func createHelpCommand() *discord.Command {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(helpCategories))
	for _, c := range helpCategories {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: c.label, Value: c.value})
	}

	return discord.NewCommand(
		"help",
		"Display help message",
		category,
		helpHandler,
	).WithOptions(&discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "category",
		Description: "The category to get help for (utility, moderation, economy)",
		Required:    false,
		Choices:     choices,
	})
}

// helpHandler handles the /help command
func helpHandler(ctx *discord.CommandContext) error {
	if cat := strings.ToLower(ctx.GetStringOption("category")); cat != "" {
		if embed, ok := helpCategoryEmbed(ctx.Client.Commands, cat); ok {
			return ctx.ReplyEmbed(embed)
		}
	}
	return ctx.ReplyEmbedComponents(discord.NewEmbed("Maxis help docs", helpText), helpSelect())
}

func helpSelect() discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(helpCategories))
	for _, c := range helpCategories {
		options = append(options, discordgo.SelectMenuOption{Label: c.label, Value: c.value})
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.SelectMenu{
			CustomID:    helpSelectID,
			Placeholder: "Choose a category...",
			Options:     options,
		},
	}}
}

// helpCategoryEmbed lists the commands of a category, sorted by name
func helpCategoryEmbed(commands *discord.CommandCollection, cat string) (*discordgo.MessageEmbed, bool) {
	for _, c := range helpCategories {
		if c.value != cat {
			continue
		}
		cmds := commands.ByCategory(cat)
		sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

		embed := discord.NewEmbed(c.title, "")
		for _, cmd := range cmds {
			embed.Fields = append(embed.Fields, discord.Field(cmd.Name, cmd.Description, true))
		}
		return embed, true
	}
	return nil, false
}

// helpSelectHandler swaps the help message for the picked category
func helpSelectHandler(ctx *discord.CommandContext) error {
	values := ctx.SelectedValues()
	if len(values) == 0 {
		return ctx.ReplyError("No category was provided! Please pick one of the options.")
	}

	embed, ok := helpCategoryEmbed(ctx.Client.Commands, values[0])
	if !ok {
		return ctx.ReplyError("Invalid category!")
	}
	return ctx.UpdateMessage("", []*discordgo.MessageEmbed{embed}, []discordgo.MessageComponent{helpSelect()})
}
