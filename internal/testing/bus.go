package chattest

import (
	"context"
	"sync"

	"quickchat/internal/events"
)

// FakeBus delivers published envelopes to in-process subscribers and records
// everything published.
type FakeBus struct {
	mu         sync.Mutex
	published  []events.Envelope
	subs       map[string][]chan events.Envelope
	PublishErr error
}

func NewFakeBus() *FakeBus {
	return &FakeBus{subs: map[string][]chan events.Envelope{}}
}

func (b *FakeBus) Published() []events.Envelope {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]events.Envelope(nil), b.published...)
}

func (b *FakeBus) Publish(_ context.Context, env events.Envelope) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.PublishErr != nil {
		return b.PublishErr
	}
	channel, err := events.ResolveChannel(env)
	if err != nil {
		return err
	}
	b.published = append(b.published, env)
	for _, ch := range b.subs[channel] {
		select {
		case ch <- env:
		default:
		}
	}
	return nil
}

// Subscribe buffers up to 16 envelopes per subscriber; overflow is dropped.
func (b *FakeBus) Subscribe(ctx context.Context, channel string) (<-chan events.Envelope, error) {
	ch := make(chan events.Envelope, 16)

	b.mu.Lock()
	b.subs[channel] = append(b.subs[channel], ch)
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.subs[channel]
		for i, c := range subs {
			if c == ch {
				b.subs[channel] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}
