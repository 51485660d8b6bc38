package relay

import (
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *Server {
	t.Helper()
	s := NewServer("127.0.0.1:0")
	require.NoError(t, s.Start())
	t.Cleanup(func() { s.Close() })
	return s
}

func dialPeer(t *testing.T, s *Server) net.Conn {
	t.Helper()
	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.Eventually(t, s.Connected, time.Second, 5*time.Millisecond)
	return conn
}

func TestAskWithoutPeer(t *testing.T) {
	s := startServer(t)

	_, err := s.Ask(context.Background(), "hi")
	assert.ErrorIs(t, err, ErrNoPeer)
}

func TestAskRoundTrip(t *testing.T) {
	s := startServer(t)
	peer := dialPeer(t, s)

	got := make(chan string, 1)
	go func() {
		buf := make([]byte, len(formatQuestion("what is go?")))
		if _, err := io.ReadFull(peer, buf); err != nil {
			return
		}
		got <- string(buf)
		peer.Write([]byte("  a language \n"))
	}()

	reply, err := s.Ask(context.Background(), "what is go?")
	require.NoError(t, err)
	assert.Equal(t, "a language", reply)
	assert.Equal(t, "Question: what is go?\n\nReply: ", <-got)
}

func TestAskTimeoutKeepsPeer(t *testing.T) {
	s := startServer(t)
	dialPeer(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := s.Ask(ctx, "anyone?")
	require.Error(t, err)
	assert.True(t, s.Connected())
}

func TestAskDropsClosedPeer(t *testing.T) {
	s := startServer(t)
	peer := dialPeer(t, s)
	peer.Close()

	_, err := s.Ask(context.Background(), "still there?")
	require.Error(t, err)
	assert.False(t, s.Connected())
}

func TestLatestPeerAnswers(t *testing.T) {
	s := startServer(t)
	dialPeer(t, s)

	second, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer second.Close()

	go func() {
		r := bufio.NewReader(second)
		if _, err := r.ReadString(' '); err != nil {
			return
		}
		second.Write([]byte("from second\n"))
	}()

	require.Eventually(t, func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()
		reply, err := s.Ask(ctx, "who?")
		return err == nil && reply == "from second"
	}, 2*time.Second, 10*time.Millisecond)
}

type fakeRequester struct {
	data  interface{}
	err   error
	topic string
}

func (f *fakeRequester) RequestContext(ctx context.Context, topic string, payload interface{}) (interface{}, error) {
	f.topic = topic
	return f.data, f.err
}

func TestMQTTAsker(t *testing.T) {
	tests := []struct {
		name    string
		data    interface{}
		err     error
		want    string
		wantErr error
	}{
		{name: "string", data: "pong", want: "pong"},
		{name: "object", data: map[string]interface{}{"reply": "pong"}, want: "pong"},
		{name: "nil", data: nil, wantErr: ErrNoReply},
		{name: "empty object", data: map[string]interface{}{}, wantErr: ErrNoReply},
		{name: "request error", err: errors.New("timeout"), wantErr: errors.New("timeout")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := &fakeRequester{data: tt.data, err: tt.err}
			reply, err := NewMQTTAsker(req).Ask(context.Background(), "ping")

			assert.Equal(t, Topic, req.topic)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, reply)
		})
	}
}
