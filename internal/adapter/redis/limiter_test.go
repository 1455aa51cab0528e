package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPipe answers INCR with a fixed count and records every command
// queued on it. Methods it does not override panic.
type recordingPipe struct {
	redis.Pipeliner
	count int64
	cmds  [][]any
}

func (p *recordingPipe) Incr(ctx context.Context, key string) *redis.IntCmd {
	cmd := redis.NewIntCmd(ctx, "incr", key)
	cmd.SetVal(p.count)
	p.cmds = append(p.cmds, cmd.Args())
	return cmd
}

func (p *recordingPipe) ExpireNX(ctx context.Context, key string, ttl time.Duration) *redis.BoolCmd {
	cmd := redis.NewBoolCmd(ctx, "expire", key, int64(ttl/time.Second), "nx")
	cmd.SetVal(true)
	p.cmds = append(p.cmds, cmd.Args())
	return cmd
}

type fakeTx struct {
	pipe *recordingPipe
	err  error
}

func (f *fakeTx) TxPipelined(_ context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	if err := fn(f.pipe); err != nil {
		return nil, err
	}
	return nil, f.err
}

func TestFixedWindowLimiter(t *testing.T) {
	tests := []struct {
		name  string
		count int64
		want  bool
	}{
		{name: "first hit", count: 1, want: true},
		{name: "at limit", count: 2, want: true},
		{name: "over limit", count: 3, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{pipe: &recordingPipe{count: tt.count}}
			l := &FixedWindowLimiter{rdb: tx, limit: 2, window: time.Minute}

			ok, err := l.Allow(context.Background(), "rl:submit:10.0.0.1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)

			// the TTL travels with every increment
			require.Len(t, tx.pipe.cmds, 2)
			assert.Equal(t, []any{"incr", "rl:submit:10.0.0.1"}, tx.pipe.cmds[0])
			assert.Equal(t, []any{"expire", "rl:submit:10.0.0.1", int64(60), "nx"}, tx.pipe.cmds[1])
		})
	}
}

func TestFixedWindowLimiterError(t *testing.T) {
	tx := &fakeTx{pipe: &recordingPipe{count: 1}, err: errors.New("connection refused")}
	l := &FixedWindowLimiter{rdb: tx, limit: 2, window: time.Minute}

	ok, err := l.Allow(context.Background(), "rl:submit:10.0.0.1")
	require.Error(t, err)
	assert.False(t, ok)
}
