package eco

import (
	"strings"
	"testing"
	"time"

	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLeaderboard(t *testing.T) {
	names := map[string]string{"1": "alice", "2": "bob"}
	got := formatLeaderboard([]economy.Account{
		{UserID: "1", Balance: 900},
		{UserID: "2", Balance: 50},
	}, func(id string) string { return names[id] })

	assert.Equal(t, "1) alice (:coin: 900)\n2) bob (:coin: 50)", got)
}

func TestFormatInventory(t *testing.T) {
	juice, ok := economy.FindItem("juice")
	require.True(t, ok)
	cat, ok := economy.FindItem("cat")
	require.True(t, ok)

	got := formatInventory([]economy.Holding{{Item: juice, Count: 3}, {Item: cat, Count: 1}})
	assert.Equal(t, "1) Juice (Count: 3)\n2) Pet Cat (Count: 1)", got)
}

func TestItemInfo(t *testing.T) {
	code, ok := economy.FindItem("code")
	require.True(t, ok)

	info := itemInfo(code, 1)
	assert.Contains(t, info, "> Persistent?: Yes")
	assert.Contains(t, info, "> Cost: :coin: 90000")
	assert.Contains(t, info, "> Amount owned: 1")
	assert.Contains(t, info, "```/buy code```")
	assert.Contains(t, info, "```/use code```")

	juice, _ := economy.FindItem("juice")
	assert.Contains(t, itemInfo(juice, 0), "> Persistent?: No")
}

func TestHackResultEmbed(t *testing.T) {
	won := hackResultEmbed(economy.HackResult{Won: true})
	assert.Equal(t, "Success!", won.Title)
	assert.Equal(t, "Hacking successful! You got :coin: 9000", won.Description)

	wrong := hackResultEmbed(economy.HackResult{})
	assert.Equal(t, "Failure!", wrong.Title)
	assert.Contains(t, wrong.Description, "wrong answer")

	malformed := hackResultEmbed(economy.HackResult{Malformed: true})
	assert.Contains(t, malformed.Description, "incorrect input type")
}

func TestReceiptEmbed(t *testing.T) {
	embed := receiptEmbed(economy.Transaction{UserID: "1", Kind: economy.Withdrawal, Opening: 500, Amount: 200, Closing: 300})

	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "Successfully updated account! Details:-", embed.Title)
	assert.Equal(t, "Opening Balance", embed.Fields[0].Name)
	assert.Equal(t, "Withdrawn", embed.Fields[1].Name)
	assert.Equal(t, ":coin: 200", embed.Fields[1].Value)
	assert.Equal(t, ":coin: 300", embed.Fields[2].Value)

	deposit := receiptEmbed(economy.Transaction{Kind: economy.Deposit, Amount: 1})
	assert.Equal(t, "Deposited", deposit.Fields[1].Name)
}

func TestReceiptEvent(t *testing.T) {
	ev := newReceiptEvent(economy.Transaction{UserID: "7", Kind: economy.Withdrawal, Opening: 10, Amount: 4, Closing: 6})
	assert.Equal(t, receiptEvent{UserID: "7", Kind: "withdrawal", Opening: 10, Amount: 4, Closing: 6}, ev)
	assert.Equal(t, "deposit", newReceiptEvent(economy.Transaction{Kind: economy.Deposit}).Kind)
}

type recordingPublisher struct {
	connected bool
	topics    []string
	payloads  []interface{}
}

func (p *recordingPublisher) IsConnected() bool { return p.connected }

func (p *recordingPublisher) Publish(topic string, payload interface{}) error {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, payload)
	return nil
}

func TestReceiptsPublishedWithoutBankDM(t *testing.T) {
	pub := &recordingPublisher{connected: true}
	n := NewReceiptNotifier(nil).WithPublisher(pub)

	tx := economy.Transaction{UserID: "7", Kind: economy.Deposit, Amount: 100, Closing: 100}
	require.False(t, tx.WantsDM())
	n.deliver(tx)

	assert.Equal(t, []string{mqtt.EventTopic("receipts")}, pub.topics)
	assert.Equal(t, newReceiptEvent(tx), pub.payloads[0])

	pub.connected = false
	n.deliver(tx)
	assert.Len(t, pub.topics, 1)
}

func TestLaptopPanel(t *testing.T) {
	now := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.UTC)
	embed := laptopEmbed("alice", now)
	assert.Equal(t, "alice's PC", embed.Title)
	assert.Equal(t, "05 MARCH 2024 02:07:09 PM", embed.Fields[1].Value)

	rows := laptopButtons("42")
	require.Len(t, rows, 1)
	row := rows[0].(discordgo.ActionsRow)
	require.Len(t, row.Components, 2)
	assert.Equal(t, "laptop_code_42", row.Components[0].(discordgo.Button).CustomID)
	assert.Equal(t, "laptop_off_42", row.Components[1].(discordgo.Button).CustomID)
	assert.True(t, strings.HasPrefix(laptopResultPrefix, laptopCodePrefix))
}
