package relay

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Topic is the MQTT request topic answered by the relay peer
const Topic = "admes"

// Requester is the part of the MQTT communicator the relay needs
type Requester interface {
	RequestContext(ctx context.Context, topic string, payload interface{}) (interface{}, error)
}

// MQTTAsker sends questions through the broker instead of a TCP peer
type MQTTAsker struct {
	requester Requester
}

// NewMQTTAsker creates an Asker on top of an MQTT requester
func NewMQTTAsker(r Requester) *MQTTAsker {
	return &MQTTAsker{requester: r}
}

type question struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

type answer struct {
	Reply string `json:"reply"`
}

// Ask publishes the question and waits up to ReplyTimeout for the answer
func (a *MQTTAsker) Ask(ctx context.Context, q string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, ReplyTimeout)
	defer cancel()

	data, err := a.requester.RequestContext(ctx, Topic, question{ID: uuid.NewString(), Question: q})
	if err != nil {
		return "", err
	}
	return decodeReply(data)
}

// decodeReply accepts a bare string or an object with a "reply" field
func decodeReply(data interface{}) (string, error) {
	switch v := data.(type) {
	case nil:
		return "", ErrNoReply
	case string:
		if v == "" {
			return "", ErrNoReply
		}
		return v, nil
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encode relay reply: %w", err)
	}
	var ans answer
	if err := json.Unmarshal(raw, &ans); err != nil {
		return "", fmt.Errorf("decode relay reply: %w", err)
	}
	if ans.Reply == "" {
		return "", ErrNoReply
	}
	return ans.Reply, nil
}
