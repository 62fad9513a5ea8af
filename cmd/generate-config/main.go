package main

import (
	"flag"
	"holdem-server/internal/config"
	"holdem-server/pkg/token"
	"os"

	"gopkg.in/yaml.v2"
)

var withSecret = flag.Bool("with-secret", true, "fill in a random JWT secret")

func main() {
	flag.Parse()

	cfg := config.DefaultConfig()
	if *withSecret {
		secret, err := token.Generate(64)
		if err != nil {
			panic(err)
		}

		cfg.JWT.Secret = secret
	}

	if err := yaml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		panic(err)
	}
}
