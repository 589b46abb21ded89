package testutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	goredis "github.com/redis/go-redis/v9"
)

// StartRedis runs a throwaway Redis container for the calling test and returns its address.
// The container is purged when the test finishes.
func StartRedis(t testing.TB) string {
	t.Helper()

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("could not connect to docker: %v", err)
	}

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7-alpine",
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("could not start redis: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("WARN: could not purge redis container: %v", err)
		}
	})

	addr := fmt.Sprintf("127.0.0.1:%s", resource.GetPort("6379/tcp"))

	pool.MaxWait = time.Minute
	if err := pool.Retry(func() error {
		rdb := goredis.NewClient(&goredis.Options{Addr: addr})
		defer rdb.Close()
		return rdb.Ping(context.Background()).Err()
	}); err != nil {
		t.Fatalf("redis not ready: %v", err)
	}

	return addr
}
