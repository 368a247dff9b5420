package cmd_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/ticketgate/pkg/cmd"
	"github.com/klwxsrx/ticketgate/pkg/log"
	"github.com/klwxsrx/ticketgate/pkg/worker"
)

func TestRun(t *testing.T) {
	errJob := errors.New("job failed")
	blocking := func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}

	tests := []struct {
		name   string
		jobs   []worker.ContextJob
		expect func(t *testing.T, err error)
	}{
		{
			name: "completed job stops the others",
			jobs: []worker.ContextJob{
				func(context.Context) error { return nil },
				blocking,
			},
			expect: func(t *testing.T, err error) {
				require.NoError(t, err)
			},
		},
		{
			name: "failed job error is returned",
			jobs: []worker.ContextJob{
				func(context.Context) error { return errJob },
				blocking,
			},
			expect: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, errJob)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			tt.expect(t, cmd.Run(ctx, log.NewStub(), tt.jobs...))
		})
	}
}
