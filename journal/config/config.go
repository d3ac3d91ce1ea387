package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/logger"
	"github.com/Astemirdum/library-console/pkg/postgres"
	"github.com/Astemirdum/library-console/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix lets JOURNAL_SERVER_HTTP_PORT and friends override the shared names.
const envPrefix = "journal"

type Config struct {
	Server   server.Config `yaml:"server"`
	Database postgres.DB   `yaml:"db"`
	Kafka    kafka.Config  `yaml:"kafka"`
	Log      logger.Log    `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process(envPrefix, &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	cfg.Database.Password = "***"
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
