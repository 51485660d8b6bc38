package eco

import (
	"github.com/PancyStudios/MaxisGo/internal/economy"
	"github.com/PancyStudios/MaxisGo/pkg/discord"
	apperrors "github.com/PancyStudios/MaxisGo/pkg/errors"
	"github.com/PancyStudios/MaxisGo/pkg/logger"
	"github.com/PancyStudios/MaxisGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// Publisher mirrors receipts to the event bus
type Publisher interface {
	IsConnected() bool
	Publish(topic string, payload interface{}) error
}

// ReceiptNotifier publishes every balance change and DMs a receipt to users
// with bank DMs enabled
type ReceiptNotifier struct {
	session   *discordgo.Session
	publisher Publisher
}

// NewReceiptNotifier creates a notifier sending through session
func NewReceiptNotifier(session *discordgo.Session) *ReceiptNotifier {
	return &ReceiptNotifier{session: session}
}

// WithPublisher also publishes every receipt on maxis/events/receipts
func (n *ReceiptNotifier) WithPublisher(p Publisher) *ReceiptNotifier {
	n.publisher = p
	return n
}

type receiptEvent struct {
	UserID  string `json:"user_id"`
	Kind    string `json:"kind"`
	Opening int64  `json:"opening"`
	Amount  int64  `json:"amount"`
	Closing int64  `json:"closing"`
}

func newReceiptEvent(tx economy.Transaction) receiptEvent {
	kind := "deposit"
	if tx.Kind == economy.Withdrawal {
		kind = "withdrawal"
	}
	return receiptEvent{UserID: tx.UserID, Kind: kind, Opening: tx.Opening, Amount: tx.Amount, Closing: tx.Closing}
}

// NotifyTransaction sends the receipt in the background; closed DMs are ignored
func (n *ReceiptNotifier) NotifyTransaction(tx economy.Transaction) {
	go func() {
		defer apperrors.RecoverMiddleware()()
		n.deliver(tx)
	}()
}

func (n *ReceiptNotifier) deliver(tx economy.Transaction) {
	if n.publisher != nil && n.publisher.IsConnected() {
		if err := n.publisher.Publish(mqtt.EventTopic("receipts"), newReceiptEvent(tx)); err != nil {
			logger.Warn("Error publicando recibo: "+err.Error(), "Economy")
		}
	}

	if !tx.WantsDM() || n.session == nil {
		return
	}
	channel, err := n.session.UserChannelCreate(tx.UserID)
	if err != nil {
		logger.Debug("No se pudo abrir DM con "+tx.UserID+": "+err.Error(), "Economy")
		return
	}
	if _, err := n.session.ChannelMessageSendEmbed(channel.ID, receiptEmbed(tx)); err != nil {
		logger.Debug("No se pudo enviar el recibo a "+tx.UserID+": "+err.Error(), "Economy")
	}
}

func receiptEmbed(tx economy.Transaction) *discordgo.MessageEmbed {
	label := "Deposited"
	if tx.Kind == economy.Withdrawal {
		label = "Withdrawn"
	}
	embed := discord.NewEmbed("Successfully updated account! Details:-", "")
	embed.Fields = []*discordgo.MessageEmbedField{
		discord.Field("Opening Balance", coins(tx.Opening), false),
		discord.Field(label, coins(tx.Amount), false),
		discord.Field("Closing Balance", coins(tx.Closing), false),
	}
	return embed
}
