package kafka

import (
	"context"
	"testing"
	"time"
)

func waitClosed(t *testing.T, p *Producer) {
	t.Helper()
	done := make(chan struct{})
	go func() {
		p.WaitClosed()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("producer flush loop did not exit")
	}
}

func TestProducer_CloseThenCancel(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "test-topic", 8)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	p.Close()
	cancel()
	p.Close() // repeated close must not panic

	waitClosed(t, p)
}

func TestProducer_CancelThenClose(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, "test-topic", 8)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.Start(ctx)
	p.Close()

	waitClosed(t, p)
}
