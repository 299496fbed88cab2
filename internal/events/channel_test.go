package events

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannel_FIFO(t *testing.T) {
	channel := NewChannel()
	for i := 1; i <= 3; i++ {
		require.NoError(t, channel.Send(Resize{Height: i}))
	}
	assert.Equal(t, 3, channel.Len())

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		event, err := channel.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, Resize{Height: i}, event)
	}
	_, ok := channel.TryNext()
	assert.False(t, ok)
}

func TestChannel_PerProducerOrder(t *testing.T) {
	channel := NewChannel()
	const producers = 8
	const perProducer = 500

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(scanID uint64) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				_ = channel.Send(FolderProgress{ScanID: scanID, Folder: string(rune('a' + i%26))})
				_ = channel.Send(Resize{Height: int(scanID)*perProducer + i})
			}
		}(uint64(p))
	}
	wg.Wait()

	last := make(map[int]int)
	received := 0
	for {
		event, ok := channel.TryNext()
		if !ok {
			break
		}
		received++
		resize, isResize := event.(Resize)
		if !isResize {
			continue
		}
		producer := resize.Height / perProducer
		if previous, seen := last[producer]; seen {
			assert.Greater(t, resize.Height, previous)
		}
		last[producer] = resize.Height
	}
	assert.Equal(t, producers*perProducer*2, received)
}

func TestChannel_NextBlocksUntilSend(t *testing.T) {
	channel := NewChannel()
	got := make(chan Event, 1)
	go func() {
		event, err := channel.Next(context.Background())
		if err == nil {
			got <- event
		}
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, channel.Send(Tick{}))

	select {
	case event := <-got:
		assert.Equal(t, Tick{}, event)
	case <-time.After(time.Second):
		t.Fatal("Next did not wake up after Send")
	}
}

func TestChannel_NextHonorsContext(t *testing.T) {
	channel := NewChannel()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := channel.Next(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestChannel_Close(t *testing.T) {
	channel := NewChannel()
	require.NoError(t, channel.Send(Tick{}))
	channel.Close()

	assert.ErrorIs(t, channel.Send(Tick{}), ErrClosed)

	event, err := channel.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Tick{}, event)

	_, err = channel.Next(context.Background())
	assert.ErrorIs(t, err, ErrClosed)
}

func TestInput_ChangesConfig(t *testing.T) {
	assert.True(t, Input{Action: ActionSelectDepth, Depth: 2}.ChangesConfig())
	assert.True(t, Input{Action: ActionToggleIgnore}.ChangesConfig())
	assert.True(t, Input{Action: ActionToggleHidden}.ChangesConfig())
	assert.True(t, Input{Action: ActionToggleFilters}.ChangesConfig())
	assert.False(t, Input{Action: ActionSortBySize}.ChangesConfig())
	assert.False(t, Input{Action: ActionQuit}.ChangesConfig())
}
