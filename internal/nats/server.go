// Package nats wraps the embedded NATS server that backs the flow journal.
package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/investflow/internal/logger"
	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	readyTimeout    = 4 * time.Second
	drainTimeout    = 2 * time.Second
	shutdownTimeout = 5 * time.Second
)

// Embedded is an in-process JetStream server together with the single
// connection the journal talks to it through. It opens no network listeners.
type Embedded struct {
	Server *server.Server
	Conn   *nats.Conn
	JS     jetstream.JetStream
}

// Start boots a server with file storage rooted at storeDir and connects to
// it in-process. On failure everything already started is torn down.
func Start(storeDir string) (*Embedded, error) {
	logger.Debug("Starting embedded NATS server in %s", storeDir)

	ns, err := server.NewServer(&server.Options{
		JetStream:  true,
		StoreDir:   storeDir,
		DontListen: true,
		NoSigs:     true,
		NoLog:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(readyTimeout) {
		ns.Shutdown()
		return nil, fmt.Errorf("nats server not ready after %s", readyTimeout)
	}

	e := &Embedded{Server: ns}

	e.Conn, err = nats.Connect("", nats.InProcessServer(ns))
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("connecting in-process: %w", err)
	}

	e.JS, err = jetstream.New(e.Conn)
	if err != nil {
		_ = e.Close()
		return nil, fmt.Errorf("creating jetstream context: %w", err)
	}

	logger.Debug("Embedded NATS server ready")
	return e, nil
}

// Stream creates or updates the journal stream on the embedded server.
func (e *Embedded) Stream(ctx context.Context) (jetstream.Stream, error) {
	return SetupStream(ctx, e.JS)
}

// Close drains the connection and then stops the server. Both steps are
// bounded so a wedged server never hangs the program on exit.
func (e *Embedded) Close() error {
	if e.Conn != nil {
		done := make(chan error, 1)
		go func() { done <- e.Conn.Drain() }()

		select {
		case err := <-done:
			if err != nil {
				logger.Warn("NATS drain failed, forcing close: %v", err)
				e.Conn.Close()
			}
		case <-time.After(drainTimeout):
			logger.Warn("NATS drain timed out after %s, forcing close", drainTimeout)
			e.Conn.Close()
		}
	}

	if e.Server == nil {
		return nil
	}
	e.Server.Shutdown()

	stopped := make(chan struct{})
	go func() {
		e.Server.WaitForShutdown()
		close(stopped)
	}()

	select {
	case <-stopped:
		logger.Debug("Embedded NATS server stopped")
		return nil
	case <-time.After(shutdownTimeout):
		return errors.New("nats server shutdown timed out")
	}
}
