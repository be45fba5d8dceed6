package server

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/nhdewitt/tiny-httpserver/internal/httperr"
	"github.com/nhdewitt/tiny-httpserver/internal/logging"
	"github.com/nhdewitt/tiny-httpserver/internal/request"
	"github.com/nhdewitt/tiny-httpserver/internal/router"
	"github.com/rs/zerolog"
)

type Options struct {
	// ReadBufferSize caps the single read taken from each connection.
	ReadBufferSize int
	// ReadTimeout sets a read deadline per connection. Zero means none.
	ReadTimeout time.Duration
	Logger      *zerolog.Logger
}

// Server owns the listener for its whole lifetime and serves accepted
// connections one at a time, in arrival order.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	router      *router.Router
	opts        Options
	log         zerolog.Logger
	done        chan struct{}

	mu     sync.Mutex
	active net.Conn
}

// Serve binds addr and starts the connection loop. A bind failure is the
// only error that prevents the server from running.
func Serve(addr string, rt *router.Router, opts Options) (*Server, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if opts.ReadBufferSize <= 0 {
		opts.ReadBufferSize = request.DefaultBufferSize
	}

	s := &Server{
		listener: listener,
		router:   rt,
		opts:     opts,
		done:     make(chan struct{}),
	}
	if opts.Logger != nil {
		s.log = *opts.Logger
	} else {
		s.log = logging.WithComponent("server")
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Done is closed once the connection loop has returned.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Close stops accepting connections and waits for the connection in
// progress, if any, to finish. A connection still blocked reading its
// request is cut short.
func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	s.mu.Lock()
	if s.active != nil {
		s.active.SetReadDeadline(time.Now())
	}
	s.mu.Unlock()

	err := s.listener.Close()
	<-s.done
	return err
}

// track records conn as the connection in progress. Once Close has run,
// any read on conn fails immediately.
func (s *Server) track(conn net.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = conn
	if conn != nil && !s.isListening.Load() {
		conn.SetReadDeadline(time.Now())
	}
}

func (s *Server) listen() {
	defer close(s.done)

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() || errors.Is(err, net.ErrClosed) {
				return
			}
			s.log.Error().Err(err).Msg("error accepting connection")
			continue
		}

		if err := s.handle(conn); err != nil {
			s.log.Warn().
				Err(err).
				Str("remote", conn.RemoteAddr().String()).
				Msg("connection failed")
		}
	}
}

func (s *Server) handle(conn net.Conn) error {
	defer conn.Close()

	if s.opts.ReadTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.opts.ReadTimeout)); err != nil {
			return httperr.New(httperr.ReadFailure, err)
		}
	}
	s.track(conn)
	defer s.track(nil)

	req, err := request.RequestFromReader(conn, s.opts.ReadBufferSize)
	if err != nil {
		if !httperr.Is(err, httperr.MalformedRequest) {
			return err
		}
		resp, werr := s.router.RouteError(conn)
		if werr != nil {
			return errors.Join(err, werr)
		}
		s.log.Debug().
			Err(err).
			Int("status", int(resp.StatusCode)).
			Str("remote", conn.RemoteAddr().String()).
			Msg("bad request answered")
		return nil
	}

	resp, err := s.router.Route(req, conn)
	s.log.Debug().
		Str("method", req.Method.String()).
		Str("path", req.Resource.Path).
		Int("status", int(resp.StatusCode)).
		Str("remote", conn.RemoteAddr().String()).
		Msg("request handled")

	return err
}
