package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/easel/internal/logging"
	"github.com/aretw0/easel/pkg/adapters/file"
	"github.com/aretw0/easel/pkg/adapters/memory"
	"github.com/aretw0/easel/pkg/adapters/redis"
	"github.com/aretw0/easel/pkg/adapters/sim"
	"github.com/aretw0/easel/pkg/config"
	"github.com/aretw0/easel/pkg/domain"
	"github.com/aretw0/easel/pkg/ports"
)

// Backend bundles the progress store and arm lease selected by config.
type Backend struct {
	Store  ports.StateStore
	Locker ports.ArmLocker
	close  func() error
}

// Close releases connections held by the backend.
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// OpenBackend builds the store and locker for cfg.Kind.
// The redis backend shares one client between store and lease.
func OpenBackend(cfg config.StoreConfig) (*Backend, error) {
	switch cfg.Kind {
	case "memory", "":
		return &Backend{Store: memory.NewStore(), Locker: memory.NewLocker()}, nil
	case "file":
		return &Backend{Store: file.New(cfg.Path), Locker: memory.NewLocker()}, nil
	case "redis":
		opts := []redis.Option{redis.WithPrefix(cfg.Redis.Prefix)}
		if cfg.Redis.TTL > 0 {
			opts = append(opts, redis.WithTTL(cfg.Redis.TTL))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		return &Backend{
			Store:  store,
			Locker: redis.NewLocker(store.Client(), cfg.Redis.Prefix),
			close:  store.Close,
		}, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", cfg.Kind)
	}
}

// NewArm builds the simulated arm described by cfg.
func NewArm(cfg config.ArmConfig) (*sim.Arm, error) {
	if len(cfg.Home) != 3 {
		return nil, fmt.Errorf("arm.home needs 3 values, got %d", len(cfg.Home))
	}
	home := domain.NewPose(cfg.Home[0], cfg.Home[1], cfg.Home[2], domain.IdentityOrientation)

	var opts []sim.Option
	if len(cfg.Workspace) > 0 {
		box, err := sim.BoxFromSlice(cfg.Workspace)
		if err != nil {
			return nil, err
		}
		opts = append(opts, sim.WithWorkspace(box))
	}
	return sim.New(home, opts...), nil
}

// createLogger configures the application logger. Debug forces the debug level.
func createLogger(cfg config.LogConfig, debug bool) *slog.Logger {
	level := logging.ParseLevel(cfg.Level)
	if debug {
		level = slog.LevelDebug
	}
	return logging.New(level, cfg.Format)
}
