// Package relay forwards /admes questions to an external answering peer and
// waits for its reply. The peer is reached either over a plain TCP connection
// it opens to the bot, or through the MQTT broker.
package relay

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/PancyStudios/MaxisGo/pkg/logger"
)

// ReplyTimeout bounds how long a question waits for its answer
const ReplyTimeout = 10 * time.Second

var (
	ErrNoPeer  = errors.New("no relay peer connected")
	ErrNoReply = errors.New("relay peer sent an empty reply")
)

// Asker forwards a question and returns the peer's reply
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Server accepts relay peers on a TCP port. The most recently connected
// peer answers the questions; older peers stay connected but idle.
type Server struct {
	addr string

	mu       sync.Mutex
	listener net.Listener
	peer     net.Conn
	reader   *bufio.Reader
	clients  map[net.Conn]struct{}
	closed   bool

	// one question in flight at a time
	askMu sync.Mutex
}

// NewServer creates a relay listening on addr, e.g. ":12102"
func NewServer(addr string) *Server {
	return &Server{
		addr:    addr,
		clients: make(map[net.Conn]struct{}),
	}
}

// Start binds the port and accepts peers in the background
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen relay %s: %w", s.addr, err)
	}

	s.mu.Lock()
	s.listener = ln
	s.mu.Unlock()

	logger.System("Servidor Admes iniciado en "+ln.Addr().String(), "Relay")
	go s.acceptLoop(ln)
	return nil
}

// Addr returns the bound address, nil before Start
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			s.mu.Lock()
			closed := s.closed
			s.mu.Unlock()
			if closed {
				return
			}
			logger.Warn("Error aceptando cliente Admes: "+err.Error(), "Relay")
			continue
		}

		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			conn.Close()
			return
		}
		s.clients[conn] = struct{}{}
		s.peer = conn
		s.reader = bufio.NewReader(conn)
		s.mu.Unlock()

		logger.Info("Nuevo cliente Admes conectado desde "+conn.RemoteAddr().String(), "Relay")
	}
}

// Connected reports whether a peer can answer questions
func (s *Server) Connected() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer != nil
}

// Ask writes "Question: {q}\n\nReply: " to the active peer and reads one line
// back. The wait ends at ReplyTimeout or when ctx is done, whichever is first.
func (s *Server) Ask(ctx context.Context, question string) (string, error) {
	s.askMu.Lock()
	defer s.askMu.Unlock()

	s.mu.Lock()
	conn, reader := s.peer, s.reader
	s.mu.Unlock()
	if conn == nil {
		return "", ErrNoPeer
	}

	deadline := time.Now().Add(ReplyTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		s.drop(conn)
		return "", err
	}
	defer conn.SetDeadline(time.Time{})

	if _, err := conn.Write([]byte(formatQuestion(question))); err != nil {
		s.drop(conn)
		return "", fmt.Errorf("send question: %w", err)
	}

	line, err := reader.ReadString('\n')
	reply := strings.TrimSpace(line)
	if err != nil {
		var netErr net.Error
		if !(errors.As(err, &netErr) && netErr.Timeout()) {
			s.drop(conn)
		}
		if reply == "" {
			return "", fmt.Errorf("read reply: %w", err)
		}
	}
	if reply == "" {
		return "", ErrNoReply
	}
	return reply, nil
}

func formatQuestion(question string) string {
	return "Question: " + question + "\n\nReply: "
}

// drop forgets a peer that failed
func (s *Server) drop(conn net.Conn) {
	s.mu.Lock()
	delete(s.clients, conn)
	if s.peer == conn {
		s.peer = nil
		s.reader = nil
	}
	s.mu.Unlock()

	conn.Close()
	logger.Info("Cliente Admes desconectado: "+conn.RemoteAddr().String(), "Relay")
}

// Close stops accepting peers and disconnects every client
func (s *Server) Close() error {
	s.mu.Lock()
	s.closed = true
	ln := s.listener
	clients := s.clients
	s.clients = make(map[net.Conn]struct{})
	s.peer = nil
	s.reader = nil
	s.mu.Unlock()

	for conn := range clients {
		conn.Close()
	}
	if ln != nil {
		return ln.Close()
	}
	return nil
}
