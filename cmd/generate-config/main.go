package main

import (
	"flag"
	"os"

	"github.com/d-becker/schnapsen/internal/config"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var resolved = flag.Bool("resolved", false, "print the configuration after applying the config file and environment")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *resolved {
		if err := config.Load(); err != nil {
			logrus.WithError(err).Fatal("could not load configuration")
		}

		cfg = config.Instance()
		if cfg.JWT.Secret != "" {
			cfg.JWT.Secret = "<redacted>"
		}
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		logrus.WithError(err).Fatal("could not encode configuration")
	}
}
