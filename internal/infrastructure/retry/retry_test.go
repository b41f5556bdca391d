package retry

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream 503")

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestDo(t *testing.T) {
	tests := []struct {
		name         string
		failures     int32
		err          error
		cfg          Config
		wantErr      error
		wantAttempts int32
	}{
		{
			name:         "first attempt succeeds",
			cfg:          fastConfig(3),
			wantAttempts: 1,
		},
		{
			name:         "succeeds after retries",
			failures:     2,
			err:          errUpstream,
			cfg:          fastConfig(5),
			wantAttempts: 3,
		},
		{
			name:         "gives up after max attempts",
			failures:     10,
			err:          errUpstream,
			cfg:          fastConfig(3),
			wantErr:      errUpstream,
			wantAttempts: 3,
		},
		{
			name:         "zero attempts runs once",
			failures:     10,
			err:          errUpstream,
			cfg:          fastConfig(0),
			wantErr:      errUpstream,
			wantAttempts: 1,
		},
		{
			name:         "permanent errors are not retried",
			failures:     10,
			err:          NewPermanent(errUpstream),
			cfg:          fastConfig(5),
			wantErr:      errUpstream,
			wantAttempts: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var attempts int32
			err := Do(context.Background(), func() error {
				if atomic.AddInt32(&attempts, 1) <= tt.failures {
					return tt.err
				}
				return nil
			}, tt.cfg)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantAttempts, attempts)
		})
	}
}

func TestDo_RetryIf(t *testing.T) {
	rateLimited := errors.New("429")
	var attempts int32

	cfg := fastConfig(5).WithRetryIf(func(err error) bool {
		return errors.Is(err, rateLimited)
	})

	err := Do(context.Background(), func() error {
		if atomic.AddInt32(&attempts, 1) == 1 {
			return rateLimited
		}
		return errUpstream
	}, cfg)

	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, int32(2), attempts)
}

func TestDo_OnRetry(t *testing.T) {
	type call struct {
		attempt int
		wait    time.Duration
	}
	var calls []call

	cfg := Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   3,
	}.WithOnRetry(func(attempt int, err error, wait time.Duration) {
		assert.ErrorIs(t, err, errUpstream)
		calls = append(calls, call{attempt, wait})
	})

	err := Do(context.Background(), func() error { return errUpstream }, cfg)

	assert.ErrorIs(t, err, errUpstream)
	// no hook after the last attempt
	assert.Equal(t, []call{{1, time.Millisecond}, {2, 3 * time.Millisecond}}, calls)
}

func TestDo_ContextCancelledDuringWait(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var attempts int32

	go func() {
		time.Sleep(5 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := Do(ctx, func() error {
		atomic.AddInt32(&attempts, 1)
		return errUpstream
	}, Config{MaxAttempts: 10, InitialDelay: time.Second, MaxDelay: time.Second, Multiplier: 1})

	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, int32(1), attempts)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestDo_ContextAlreadyDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var attempts int32

	err := Do(ctx, func() error {
		atomic.AddInt32(&attempts, 1)
		return nil
	}, fastConfig(3))

	assert.Equal(t, context.Canceled, err)
	assert.Equal(t, int32(0), attempts)
}

func TestDoWithResult(t *testing.T) {
	type offers struct {
		count int
	}
	var attempts int32

	got, err := DoWithResult(context.Background(), func() (*offers, error) {
		if atomic.AddInt32(&attempts, 1) < 2 {
			return nil, errUpstream
		}
		return &offers{count: 8}, nil
	}, fastConfig(3))

	require.NoError(t, err)
	assert.Equal(t, 8, got.count)
	assert.Equal(t, int32(2), attempts)
}

func TestDoWithResult_ReturnsLastError(t *testing.T) {
	got, err := DoWithResult(context.Background(), func() (int, error) {
		return 0, errUpstream
	}, fastConfig(2))

	assert.ErrorIs(t, err, errUpstream)
	assert.Zero(t, got)
}

func TestBackoff(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{1, 100 * time.Millisecond},
		{2, 200 * time.Millisecond},
		{3, 400 * time.Millisecond},
		{4, 800 * time.Millisecond},
		{5, time.Second},
		{10, time.Second},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.Backoff(tt.attempt), "attempt %d", tt.attempt)
	}
}

func TestBackoff_Jitter(t *testing.T) {
	cfg := Config{
		InitialDelay: 100 * time.Millisecond,
		MaxDelay:     time.Second,
		Multiplier:   2,
		JitterFactor: 0.5,
	}

	for i := 0; i < 50; i++ {
		wait := cfg.Backoff(1)
		assert.GreaterOrEqual(t, wait, 100*time.Millisecond)
		assert.LessOrEqual(t, wait, 150*time.Millisecond)
	}
}

func TestSourceConfig(t *testing.T) {
	assert.Equal(t, 3, SourceConfig.MaxAttempts)
	assert.Equal(t, 200*time.Millisecond, SourceConfig.InitialDelay)
	assert.Equal(t, 5*time.Second, SourceConfig.MaxDelay)
	assert.Nil(t, SourceConfig.RetryIf)
}

func TestPermanent(t *testing.T) {
	assert.Nil(t, NewPermanent(nil))

	err := NewPermanent(errUpstream)
	assert.True(t, IsPermanent(err))
	assert.False(t, SkipPermanent(err))
	assert.ErrorIs(t, err, errUpstream)
	assert.Equal(t, errUpstream.Error(), err.Error())
	assert.Equal(t, "permanent error", (&Permanent{}).Error())

	assert.False(t, IsPermanent(errUpstream))
	assert.True(t, SkipPermanent(errUpstream))
}

func TestUnwrap(t *testing.T) {
	assert.Same(t, errUpstream, Unwrap(NewPermanent(errUpstream)))
	assert.Same(t, errUpstream, Unwrap(errUpstream))
	assert.Nil(t, Unwrap(nil))
}
