package main

import (
	"habittracker/config"
	"habittracker/routes"

	"github.com/rs/zerolog/log"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	addr := ":" + config.Port()
	log.Info().Str("addr", addr).Msg("starting habit tracker")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
