package output_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/titlemaker/output"
)

// solidFrame returns a 2x2 frame whose bytes are all v.
func solidFrame(v byte) output.Frame {
	pix := make([]byte, 2*2*4)
	for i := range pix {
		pix[i] = v
	}
	return output.Frame{Width: 2, Height: 2, Pix: pix}
}

func TestPublisherDropsWhileFramePending(t *testing.T) {
	entered := make(chan byte, 4)
	release := make(chan struct{})
	sink := output.SinkFunc(func(ctx context.Context, f output.Frame) error {
		entered <- f.Pix[0]
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	})

	p := output.NewPublisher(2, 2, sink)
	require.NoError(t, p.Start(context.Background()))
	assert.True(t, p.Running())

	require.NoError(t, p.Publish(solidFrame(1)))
	assert.Equal(t, byte(1), <-entered)

	// The sink is busy with frame 1: frame 2 waits, frame 3 is dropped.
	require.NoError(t, p.Publish(solidFrame(2)))
	require.NoError(t, p.Publish(solidFrame(3)))

	close(release)
	assert.Equal(t, byte(2), <-entered)

	require.NoError(t, p.Stop())
	assert.False(t, p.Running())
	sent, dropped := p.Stats()
	assert.Equal(t, uint64(2), sent)
	assert.Equal(t, uint64(1), dropped)
}

func TestPublisherCopiesFrame(t *testing.T) {
	got := make(chan output.Frame, 1)
	sink := output.SinkFunc(func(ctx context.Context, f output.Frame) error {
		got <- output.Frame{Width: f.Width, Height: f.Height, Pix: append([]byte(nil), f.Pix...), BottomUp: f.BottomUp}
		return nil
	})

	p := output.NewPublisher(2, 2, sink)
	require.NoError(t, p.Start(context.Background()))
	defer p.Stop()

	f := solidFrame(7)
	f.BottomUp = true
	require.NoError(t, p.Publish(f))
	f.Pix[0] = 0

	sent := <-got
	assert.Equal(t, byte(7), sent.Pix[0])
	assert.True(t, sent.BottomUp)
}

func TestPublisherErrors(t *testing.T) {
	p := output.NewPublisher(2, 2, output.SinkFunc(func(context.Context, output.Frame) error { return nil }))

	assert.ErrorIs(t, p.Publish(output.Frame{Width: 3, Height: 2, Pix: make([]byte, 24)}), output.ErrFrameSize)
	assert.ErrorIs(t, p.Publish(output.Frame{Width: 2, Height: 2, Pix: make([]byte, 3)}), output.ErrFrameSize)

	require.NoError(t, p.Start(context.Background()))
	assert.ErrorIs(t, p.Start(context.Background()), output.ErrPublisherClosed)

	require.NoError(t, p.Stop())
	require.NoError(t, p.Stop())
	assert.ErrorIs(t, p.Publish(solidFrame(1)), output.ErrPublisherClosed)
	assert.ErrorIs(t, p.Start(context.Background()), output.ErrPublisherClosed)
}

func TestPublisherStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := output.NewPublisher(2, 2, output.SinkFunc(func(context.Context, output.Frame) error { return nil }))
	require.NoError(t, p.Start(ctx))
	cancel()
	assert.NoError(t, p.Stop())
}
