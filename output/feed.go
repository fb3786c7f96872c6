package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	writeTimeout    = 5 * time.Second
	shutdownTimeout = 2 * time.Second
)

// Feed is a Sink broadcasting frames as JPEG images to websocket
// clients. It is also the http.Handler clients connect to.
type Feed struct {
	logger  *slog.Logger
	encode  imgio.Encoder
	queue   int
	upgrade websocket.Upgrader

	mu      sync.Mutex
	clients map[*feedClient]struct{}
	buf     bytes.Buffer
}

type feedClient struct {
	conn   *websocket.Conn
	frames chan []byte
}

// NewFeed returns a feed with no clients.
func NewFeed(opts ...Option) *Feed {
	o := applyOptions(opts)
	return &Feed{
		logger: o.logger,
		encode: imgio.JPEGEncoder(o.jpegQuality),
		queue:  o.queue,
		upgrade: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},
		clients: make(map[*feedClient]struct{}),
	}
}

// ServeHTTP upgrades the request to a websocket and streams frames to it
// until the client goes away.
func (fd *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := fd.upgrade.Upgrade(w, r, nil)
	if err != nil {
		fd.logger.Warn("feed upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &feedClient{conn: conn, frames: make(chan []byte, fd.queue)}

	fd.mu.Lock()
	fd.clients[c] = struct{}{}
	n := len(fd.clients)
	fd.mu.Unlock()
	fd.logger.Info("feed client connected", "remote", r.RemoteAddr, "clients", n)

	go c.writeLoop(fd.logger)

	// Clients only send control frames; reading surfaces the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	fd.drop(c)
	fd.logger.Info("feed client disconnected", "remote", r.RemoteAddr)
}

func (c *feedClient) writeLoop(logger *slog.Logger) {
	defer c.conn.Close()
	for data := range c.frames {
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			logger.Debug("feed write failed", "err", err)
			return
		}
	}
	_ = c.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}

// drop unregisters c and ends its writer.
func (fd *Feed) drop(c *feedClient) {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	if _, ok := fd.clients[c]; !ok {
		return
	}
	delete(fd.clients, c)
	close(c.frames)
}

// Clients returns the number of connected clients.
func (fd *Feed) Clients() int {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	return len(fd.clients)
}

// Send encodes f once and queues it for every client. A client whose
// queue is full misses the frame.
func (fd *Feed) Send(ctx context.Context, f Frame) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fd.mu.Lock()
	defer fd.mu.Unlock()
	if len(fd.clients) == 0 {
		return nil
	}

	fd.buf.Reset()
	if err := fd.encode(&fd.buf, f.Image()); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	data := bytes.Clone(fd.buf.Bytes())
	for c := range fd.clients {
		select {
		case c.frames <- data:
		default:
		}
	}
	return nil
}

// Close disconnects every client.
func (fd *Feed) Close() {
	fd.mu.Lock()
	defer fd.mu.Unlock()
	for c := range fd.clients {
		delete(fd.clients, c)
		close(c.frames)
	}
}

// ListenAndServe serves the feed at /feed on addr until ctx is cancelled.
func (fd *Feed) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/feed", fd)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: writeTimeout}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fd.logger.Info("feed listening", "addr", addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		fd.Close()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
