package api

import (
	"math/rand"
	"sync"
	"time"
)

type Config struct {
	Addr         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Application struct {
	Config Config

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewApplication returns an application serving with cfg.
func NewApplication(cfg Config) *Application {
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 10 * time.Second
	}
	if cfg.WriteTimeout == 0 {
		cfg.WriteTimeout = 30 * time.Second
	}
	return &Application{
		Config: cfg,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}
