package output_test

import (
	"bytes"
	"context"
	"image/jpeg"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/output"
)

func TestFeedBroadcastsJPEG(t *testing.T) {
	fd := output.NewFeed(output.WithJPEGQuality(70))
	srv := httptest.NewServer(fd)
	defer srv.Close()
	defer fd.Close()

	// Sending with nobody connected is a no-op.
	require.NoError(t, fd.Send(context.Background(), solidFrame(9)))

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return fd.Clients() == 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, fd.Send(context.Background(), solidFrame(200)))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, websocket.BinaryMessage, kind)

	img, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 2, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return fd.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestFeedAsPublisherSink(t *testing.T) {
	fd := output.NewFeed()
	srv := httptest.NewServer(fd)
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return fd.Clients() == 1 }, time.Second, 5*time.Millisecond)

	p := output.NewPublisher(2, 2, fd)
	require.NoError(t, p.Start(context.Background()))
	require.NoError(t, p.Publish(solidFrame(128)))

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	require.NoError(t, p.Stop())
	fd.Close()

	// Closing the feed ends the stream for connected clients.
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestFeedSendHonoursContext(t *testing.T) {
	fd := output.NewFeed()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, fd.Send(ctx, solidFrame(1)), context.Canceled)
}
