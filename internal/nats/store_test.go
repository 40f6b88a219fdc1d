package nats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "investflow.acme.>", SubjectForSession("acme"))
	assert.Equal(t, "investflow.acme.step", SubjectForEvent("acme", EventTypeStep))
}

func TestSessionFromSubject(t *testing.T) {
	tests := []struct {
		subject string
		want    string
		ok      bool
	}{
		{"investflow.acme.step", "acme", true},
		{"investflow.fund-2.control", "fund-2", true},
		{"investflow..step", "", false},
		{"other.acme.step", "", false},
		{"investflow.acme", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.subject, func(t *testing.T) {
			got, ok := SessionFromSubject(tt.subject)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEmbeddedServerRoundTrip(t *testing.T) {
	srv, err := Start(t.TempDir())
	require.NoError(t, err)
	defer func() { assert.NoError(t, srv.Close()) }()

	ctx := context.Background()
	stream, err := srv.Stream(ctx)
	require.NoError(t, err)

	_, err = srv.JS.Publish(ctx, SubjectForEvent("acme", EventTypeStep), []byte(`{}`))
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)
}

func TestEmbeddedServer_StreamIsIdempotent(t *testing.T) {
	srv, err := Start(t.TempDir())
	require.NoError(t, err)
	defer func() { assert.NoError(t, srv.Close()) }()

	ctx := context.Background()
	_, err = srv.Stream(ctx)
	require.NoError(t, err)
	_, err = srv.Stream(ctx)
	assert.NoError(t, err)
}
