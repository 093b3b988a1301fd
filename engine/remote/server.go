package remote

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// DefaultPath is the websocket endpoint path.
const DefaultPath = "/ws"

type server struct {
	mu *sync.Mutex

	sess     session.Session
	upgrader websocket.Upgrader
	path     string

	readLimit    int64
	writeTimeout time.Duration

	httpServer *http.Server
	listener   net.Listener
	conns      map[uuid.UUID]*conn
	closed     bool
}

// conn is one client connection. Writes are serialized by mu.
type conn struct {
	mu     *sync.Mutex
	id     uuid.UUID
	ws     *websocket.Conn
	logger *logrus.Entry
}

// Server accepts websocket clients that send browser-style input events to a
// session and receive a snapshot of the session after each message.
type Server interface {
	http.Handler

	// Start listens on addr and serves in the background.
	//
	// Parameters:
	//   - addr: the TCP address to listen on, e.g. "127.0.0.1:8090"
	//
	// Returns:
	//   - error: an error if the listener could not be opened
	Start(addr string) error

	// Addr returns the listening address, or nil before Start.
	Addr() net.Addr

	// Connections returns the number of open client connections.
	Connections() int

	// Close stops accepting clients and closes every open connection.
	//
	// Returns:
	//   - error: the HTTP server's shutdown error
	Close() error
}

var _ Server = &server{}

// NewServer creates a Server that forwards input to the given session.
//
// Parameters:
//   - sess: the session receiving input
//   - options: functional options to configure the server
//
// Returns:
//   - Server: the newly created server, not yet listening
func NewServer(sess session.Session, options ...ServerBuilderOption) Server {
	s := &server{
		mu:           &sync.Mutex{},
		sess:         sess,
		path:         DefaultPath,
		readLimit:    4096,
		writeTimeout: 5 * time.Second,
		conns:        make(map[uuid.UUID]*conn),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *server) Start(addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("remote: listen %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(s.path, s)

	s.mu.Lock()
	s.listener = ln
	s.httpServer = &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	srv := s.httpServer
	s.mu.Unlock()

	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("remote: serve: %v", err)
		}
	}()
	log.WithField("addr", ln.Addr().String()).Info("remote input listening")
	return nil
}

func (s *server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warnf("remote: upgrade: %v", err)
		return
	}
	ws.SetReadLimit(s.readLimit)

	c := &conn{mu: &sync.Mutex{}, id: uuid.New(), ws: ws}
	c.logger = log.WithFields(log.Fields{"connection": c.id.String(), "remote": r.RemoteAddr})

	if !s.register(c) {
		_ = ws.Close()
		return
	}
	defer s.unregister(c)

	c.logger.Info("client connected")
	s.reply(c, Reply{Type: ReplySnapshot})
	s.readLoop(c)
}

// readLoop handles messages until the client goes away.
func (s *server) readLoop(c *conn) {
	for {
		var m Message
		if err := c.ws.ReadJSON(&m); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.logger.Warnf("read: %v", err)
			}
			return
		}

		e, ok, err := toEvent(m)
		if err != nil {
			c.logger.Debug(err)
			s.reply(c, Reply{Type: ReplyError, Error: err.Error()})
			continue
		}
		if ok {
			s.sess.HandleEvent(e)
		}
		s.reply(c, Reply{Type: ReplySnapshot})
	}
}

// reply fills in the connection id and, for snapshot replies, the session state.
func (s *server) reply(c *conn, r Reply) {
	r.Connection = c.id.String()
	if r.Type == ReplySnapshot {
		snap := s.sess.Snapshot()
		r.Snapshot = &snap
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.ws.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	if err := c.ws.WriteJSON(r); err != nil {
		c.logger.Debugf("write: %v", err)
	}
}

func (s *server) register(c *conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	s.conns[c.id] = c
	return true
}

func (s *server) unregister(c *conn) {
	s.mu.Lock()
	delete(s.conns, c.id)
	s.mu.Unlock()
	_ = c.ws.Close()
	c.logger.Info("client disconnected")
}

func (s *server) Connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

func (s *server) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	srv := s.httpServer
	conns := make([]*conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()

	var err error
	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		defer cancel()
		err = srv.Shutdown(ctx)
	}

	// Hijacked connections are not tracked by http.Server.
	deadline := time.Now().Add(time.Second)
	for _, c := range conns {
		c.mu.Lock()
		_ = c.ws.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server closing"), deadline)
		c.mu.Unlock()
		_ = c.ws.Close()
	}
	return err
}
