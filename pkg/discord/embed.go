package discord

import (
	"math/rand/v2"
	"time"

	"github.com/bwmarrin/discordgo"
)

// FooterText is stamped on every embed the bot sends
const FooterText = "Maxis"

// RandomColor returns a random 24-bit embed color
func RandomColor() int {
	return rand.IntN(0x1000000)
}

// NewEmbed builds an embed with a random color, footer and timestamp
func NewEmbed(title, description string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       RandomColor(),
		Footer:      &discordgo.MessageEmbedFooter{Text: FooterText},
		Timestamp:   time.Now().Format(time.RFC3339),
	}
}

// SuccessEmbed is a "Success!" embed
func SuccessEmbed(description string) *discordgo.MessageEmbed {
	return NewEmbed("Success!", description)
}

// ErrorEmbed is an "Error!" embed
func ErrorEmbed(description string) *discordgo.MessageEmbed {
	return NewEmbed("Error!", description)
}

// Field is a shorthand for an embed field
func Field(name, value string, inline bool) *discordgo.MessageEmbedField {
	return &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline}
}
