//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var (
	redisContainerOnce sync.Once
	redisTestContainer testcontainers.Container

	rabbitContainerOnce sync.Once
	rabbitTestContainer testcontainers.Container
)

const (
	redisPort    = "6379/tcp"
	amqpPort     = "5672/tcp"
	amqpUser     = "test"
	amqpPassword = "testpass"
)

type ContainerInfo struct {
	Host string
	Port nat.Port
}

func (ci ContainerInfo) Addr() string {
	return net.JoinHostPort(ci.Host, ci.Port.Port())
}

// ------------------------------------------------------------
// Redis for the booking rate limiter
// ------------------------------------------------------------
func StartRedis(t *testing.T) ContainerInfo {
	redisContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{redisPort},
			Cmd:          []string{"redis-server", "--save", "", "--appendonly", "no"},
			WaitingFor: wait.ForAll(
				wait.ForLog("Ready to accept connections"),
				wait.ForListeningPort(redisPort),
			).WithStartupTimeoutDefault(60 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		redisTestContainer, err = startGenericContainer(req, 120)
		require.NoError(t, err, "failed to start redis container")
		registerTermination(t, "redis", redisTestContainer)
	})

	info, err := getContainerHostPort(redisTestContainer, redisPort)
	require.NoError(t, err, "failed to resolve redis address")
	return info
}

// ------------------------------------------------------------
// RabbitMQ for booking.confirmed events
// ------------------------------------------------------------
func StartRabbitMQ(t *testing.T) ContainerInfo {
	rabbitContainerOnce.Do(func() {
		req := testcontainers.ContainerRequest{
			Image:        "rabbitmq:3.13-alpine",
			ExposedPorts: []string{amqpPort},
			Env: map[string]string{
				"RABBITMQ_DEFAULT_USER": amqpUser,
				"RABBITMQ_DEFAULT_PASS": amqpPassword,
			},
			WaitingFor: wait.ForAll(
				wait.ForLog("Server startup complete"),
				wait.ForListeningPort(amqpPort),
			).WithStartupTimeoutDefault(90 * time.Second),
			Labels: map[string]string{"purpose": "e2e-tests"},
		}

		var err error
		rabbitTestContainer, err = startGenericContainer(req, 180)
		require.NoError(t, err, "failed to start rabbitmq container")
		registerTermination(t, "rabbitmq", rabbitTestContainer)
	})

	info, err := getContainerHostPort(rabbitTestContainer, amqpPort)
	require.NoError(t, err, "failed to resolve rabbitmq address")
	return info
}

// AMQPURL is the broker URL for a StartRabbitMQ result.
func AMQPURL(info ContainerInfo) string {
	return fmt.Sprintf("amqp://%s:%s@%s/", amqpUser, amqpPassword, info.Addr())
}

func startGenericContainer(req testcontainers.ContainerRequest, timeoutSec int) (testcontainers.Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeoutSec)*time.Second)
	defer cancel()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
}

func registerTermination(t *testing.T, name string, c testcontainers.Container) {
	t.Cleanup(func() {
		if c == nil {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := c.Terminate(ctx); err != nil {
			slog.Warn("failed to terminate container", "container", name, "error", err.Error())
		}
	})
}

func getContainerHostPort(c testcontainers.Container, port string) (ContainerInfo, error) {
	ctx := context.Background()
	mappedPort, err := c.MappedPort(ctx, nat.Port(port))
	if err != nil {
		return ContainerInfo{}, err
	}
	host, err := c.Host(ctx)
	if err != nil {
		return ContainerInfo{}, err
	}
	return ContainerInfo{Host: host, Port: mappedPort}, nil
}
