package testing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

const esImage = "docker.elastic.co/elasticsearch/elasticsearch:8.12.0"

// ESContainer is a single-node Elasticsearch reachable over plain HTTP.
type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts Elasticsearch and terminates it when tb finishes.
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	c, err := elasticsearch.Run(ctx,
		esImage,
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(c); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})

	host, err := c.Host(ctx)
	if err != nil {
		tb.Fatalf("failed to get elasticsearch host: %v", err)
	}
	port, err := c.MappedPort(ctx, "9200")
	if err != nil {
		tb.Fatalf("failed to get elasticsearch port: %v", err)
	}

	return &ESContainer{
		Container: c,
		Address:   fmt.Sprintf("http://%s:%s", host, port.Port()),
	}
}
