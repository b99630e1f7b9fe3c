package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/target/academic-suite/config"
)

const serviceName = "academic-suite"

// Slot reads and writes are tiny; fail fast instead of stalling a login.
const (
	redisDialTimeout = 5 * time.Second
	redisIOTimeout   = 2 * time.Second
)

type redisMode string

const (
	redisDirect   redisMode = "direct"
	redisSentinel redisMode = "sentinel"
	redisCluster  redisMode = "cluster"
)

// redisPlan is a validated Redis topology ready to be dialed.
type redisPlan struct {
	mode redisMode
	opts redis.UniversalOptions
}

// String describes the target without credentials.
func (p redisPlan) String() string {
	if p.mode == redisSentinel {
		return fmt.Sprintf("sentinel:%s@%s", p.opts.MasterName, strings.Join(p.opts.Addrs, ","))
	}
	return string(p.mode) + ":" + strings.Join(p.opts.Addrs, ",")
}

//nolint:ireturn // the topology decides the concrete client.
func (p redisPlan) client() redis.UniversalClient {
	switch p.mode {
	case redisCluster:
		return redis.NewClusterClient(p.opts.Cluster())
	case redisSentinel:
		return redis.NewFailoverClient(p.opts.Failover())
	default:
		return redis.NewClient(p.opts.Simple())
	}
}

// planRedis turns REDIS_* settings into a topology. Cluster wins over sentinel,
// sentinel over a direct URI. A cluster without CLUSTER_NODES seeds from REDIS_URI.
func planRedis(cfg config.RedisConfig) (redisPlan, error) {
	base := redis.UniversalOptions{
		ClientName:   serviceName,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  redisDialTimeout,
		ReadTimeout:  redisIOTimeout,
		WriteTimeout: redisIOTimeout,
	}

	switch {
	case cfg.UseCluster:
		base.Addrs = nonEmpty(cfg.ClusterNodes)
		if len(base.Addrs) == 0 {
			if err := applyRedisURI(&base, cfg.URI); err != nil {
				return redisPlan{}, fmt.Errorf("redis cluster seed: %w", err)
			}
		}
		if len(base.Addrs) == 0 {
			return redisPlan{}, errors.New("redis cluster configuration requires at least one address")
		}
		return redisPlan{mode: redisCluster, opts: base}, nil

	case cfg.UseSentinel:
		nodes := nonEmpty(cfg.SentinelNodes)
		if len(nodes) == 0 {
			return redisPlan{}, errors.New("redis sentinel configuration requires at least one sentinel node")
		}
		for i, n := range nodes {
			if _, _, err := net.SplitHostPort(n); err != nil {
				nodes[i] = net.JoinHostPort(n, cfg.SentinelPort)
			}
		}
		base.Addrs = nodes
		base.MasterName = cfg.SentinelMasterName
		base.SentinelPassword = cfg.SentinelPassword
		return redisPlan{mode: redisSentinel, opts: base}, nil

	default:
		if err := applyRedisURI(&base, cfg.URI); err != nil {
			return redisPlan{}, err
		}
		if len(base.Addrs) == 0 {
			return redisPlan{}, errors.New("redis direct configuration requires a URI")
		}
		return redisPlan{mode: redisDirect, opts: base}, nil
	}
}

// applyRedisURI accepts either host:port or a redis:// / rediss:// URL.
// URL credentials, DB and TLS override the REDIS_* values.
func applyRedisURI(opts *redis.UniversalOptions, uri string) error {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return nil
	}
	if !strings.HasPrefix(uri, "redis://") && !strings.HasPrefix(uri, "rediss://") {
		opts.Addrs = []string{uri}
		return nil
	}

	parsed, err := redis.ParseURL(uri)
	if err != nil {
		return fmt.Errorf("parse redis url: %w", err)
	}
	opts.Addrs = []string{parsed.Addr}
	opts.Username = parsed.Username
	if parsed.Password != "" {
		opts.Password = parsed.Password
	}
	if parsed.DB != 0 {
		opts.DB = parsed.DB
	}
	opts.TLSConfig = parsed.TLSConfig
	return nil
}

func nonEmpty(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// ConnectRedis dials the configured topology and pings it.
//
//nolint:ireturn // single, sentinel or cluster client chosen at runtime.
func ConnectRedis(ctx context.Context, cfg DatabaseConfig) (redis.UniversalClient, error) {
	plan, err := planRedis(cfg.RedisConfig)
	if err != nil {
		return nil, err
	}
	client := plan.client()

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if pingErr := client.Ping(pingCtx).Err(); pingErr != nil {
		if closeErr := client.Close(); closeErr != nil {
			pingErr = errors.Join(pingErr, fmt.Errorf("close redis client: %w", closeErr))
		}
		return nil, fmt.Errorf("ping redis %s: %w", plan, pingErr)
	}

	if cfg.Logger != nil {
		cfg.Logger.InfoContext(ctx, "redis connected", "target", plan.String(), "db", plan.opts.DB)
	}
	return client, nil
}
