package main

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-theft-auto/titlemaker/output"
)

// stream owns the live output: a websocket feed fed by a publisher. It is
// started and stopped from the UI thread.
type stream struct {
	cfg    OutputConfig
	logger *slog.Logger

	pub    *output.Publisher
	feed   *output.Feed
	cancel context.CancelFunc
	done   chan error
}

func newStream(cfg OutputConfig, logger *slog.Logger) *stream {
	return &stream{cfg: cfg, logger: logger}
}

// Running reports whether the feed is being served.
func (s *stream) Running() bool { return s.pub != nil }

// Start serves the feed on the configured address.
func (s *stream) Start(ctx context.Context) error {
	if s.Running() {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	opts := []output.Option{
		output.WithLogger(s.logger),
		output.WithJPEGQuality(s.cfg.JPEGQuality),
	}
	feed := output.NewFeed(opts...)
	pub := output.NewPublisher(s.cfg.Width, s.cfg.Height, feed, opts...)
	if err := pub.Start(ctx); err != nil {
		cancel()
		return err
	}

	done := make(chan error, 1)
	go func() {
		err := feed.ListenAndServe(ctx, s.cfg.FeedAddr)
		if err != nil {
			s.logger.Error("feed stopped", "addr", s.cfg.FeedAddr, "error", err)
		}
		done <- err
	}()

	s.pub, s.feed, s.cancel, s.done = pub, feed, cancel, done
	return nil
}

// Failed returns the server error once the feed has stopped on its own,
// and stops the publisher.
func (s *stream) Failed() error {
	if !s.Running() {
		return nil
	}
	select {
	case err := <-s.done:
		s.done = nil
		s.Stop()
		if err == nil {
			err = errors.New("feed server exited")
		}
		return err
	default:
		return nil
	}
}

// Publish hands a frame to the feed. Frames are dropped while the previous
// one is still being encoded.
func (s *stream) Publish(f output.Frame) {
	if !s.Running() {
		return
	}
	if err := s.pub.Publish(f); err != nil {
		s.logger.Warn("publish frame", "error", err)
	}
}

// Clients returns the number of connected viewers.
func (s *stream) Clients() int {
	if s.feed == nil {
		return 0
	}
	return s.feed.Clients()
}

// Stop shuts the server down and waits for it.
func (s *stream) Stop() {
	if !s.Running() {
		return
	}
	s.cancel()
	if err := s.pub.Stop(); err != nil {
		s.logger.Warn("stop publisher", "error", err)
	}
	if s.done != nil {
		<-s.done
	}
	sent, dropped := s.pub.Stats()
	s.logger.Info("feed stopped", "sent", sent, "dropped", dropped)
	s.pub, s.feed, s.cancel, s.done = nil, nil, nil, nil
}
