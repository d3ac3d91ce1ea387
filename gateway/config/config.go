package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Astemirdum/library-console/pkg/kafka"
	"github.com/Astemirdum/library-console/pkg/libapi"
	"github.com/Astemirdum/library-console/pkg/logger"
	"github.com/Astemirdum/library-console/pkg/server"
	"github.com/kelseyhightower/envconfig"
)

type JournalHTTPServer struct {
	Host string `yaml:"host" envconfig:"JOURNAL_HTTP_HOST" default:"localhost"`
	Port string `yaml:"port" envconfig:"JOURNAL_HTTP_PORT" default:"8090"`
}

type Config struct {
	Server            server.Config `yaml:"server"`
	Kafka             kafka.Config  `yaml:"kafka"`
	LibraryAPI        libapi.Config `yaml:"libraryAPI"`
	JournalHTTPServer JournalHTTPServer
	Log               logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment. Options set values the
// environment leaves unset.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
