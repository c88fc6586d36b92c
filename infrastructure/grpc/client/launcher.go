package client

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"selection-lab/errors"
	"strconv"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/backoff"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
)

const readinessTimeout = 5 * time.Second

type Config struct {
	ID       string
	BinPath  string
	Host     string
	Port     int
	LogLevel string
}

// StartSpecialist launches the sidecar binary as a child process bound to ctx
// and returns a client once its gRPC server is ready.
// The process is killed if the handshake fails, so no zombie is left behind.
func StartSpecialist(ctx context.Context, cfg Config) (*SpecialistClient, error) {
	if _, err := os.Stat(cfg.BinPath); err != nil {
		return nil, fmt.Errorf("%w: %s", errors.ErrSpecialistNotFound, cfg.BinPath)
	}

	cmd := exec.CommandContext(ctx, cfg.BinPath,
		"-id", cfg.ID,
		"-port", strconv.Itoa(cfg.Port),
		"-level", cfg.LogLevel,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	setPlatformSpecificAttrs(cmd)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrSpecialistStartFailed, err)
	}

	conn, err := Dial(ctx, cfg.Host, cfg.Port)
	if err != nil {
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("%w on %s port %d: %v", errors.ErrSpecialistUnavailable, cfg.Host, cfg.Port, err)
	}

	return NewSpecialistClient(cfg.ID, conn, cmd.Process, cfg.Port, time.Now()), nil
}

// Dial creates a client connection with a backoff strategy and waits until it
// is READY, so that no request hits a sidecar still loading its word lists.
func Dial(ctx context.Context, host string, port int) (*grpc.ClientConn, error) {
	addr := fmt.Sprintf("%s:%d", host, port)

	conn, err := grpc.NewClient(addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithConnectParams(grpc.ConnectParams{
			Backoff: backoff.Config{
				BaseDelay:  100 * time.Millisecond,
				Multiplier: 1.6,
				Jitter:     0.2,
				MaxDelay:   3 * time.Second,
			},
		}),
	)
	if err != nil {
		return nil, err
	}

	dialCtx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return conn, nil
		}
		if !conn.WaitForStateChange(dialCtx, state) {
			_ = conn.Close()
			return nil, errors.ErrSpecialistUnavailable
		}
	}
}
