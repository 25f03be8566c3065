package connectx

import (
	"github.com/vovakirdan/connectx/internal/config"
	"github.com/vovakirdan/connectx/internal/registry"
)

func init() {
	registry.Register("classic", config.DefaultGameConfig)
	registry.Register("cylinder", variant("Cylinder 7x6", 7, 6, 4, true))
	registry.Register("tiny", variant("Tiny 4x4", 4, 4, 3, false))
	registry.Register("five", variant("Connect Five 9x7", 9, 7, 5, false))
	registry.Register("wide", variant("Wide Cylinder 12x6", 12, 6, 4, true))
}

func variant(name string, w, h, connect int, cylindrical bool) registry.Factory {
	return func() config.GameConfig {
		cfg := config.DefaultGameConfig()
		cfg.Name = name
		cfg.Width = w
		cfg.Height = h
		cfg.ConnectLength = connect
		cfg.Cylindrical = cylindrical
		return cfg
	}
}
