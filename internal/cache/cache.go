package cache

import (
	"context"
	"crypto/tls"
	"meetplan/internal/config"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

const pingTimeout = 3 * time.Second

var (
	once         sync.Once
	valkeyClient valkey.Client
)

func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()

		options := valkey.ClientOption{
			InitAddress:      []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:         env.ValkeyPassword,
			Username:         env.ValkeyUsername,
			ClientName:       "meetplan",
			ConnWriteTimeout: 5 * time.Second,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			panic(err)
		}

		valkeyClient = client
	})

	return valkeyClient
}

// Ping checks that valkey answers within a short deadline
func Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	client := GetCache()
	return client.Do(ctx, client.B().Ping().Build()).Error()
}
