// SPDX-LICENSE-IDENTIFIER: GPL-2.0-Only
// (C) 2024 Author: <kisfg@hotmail.com>
package main

import (
	"flag"
	"log"
	"os"
	"strings"

	config "sm3lab/config"
	cryptoprotect "sm3lab/cryptoProtect"
	utils "sm3lab/utils"
)

var (
	configPath = flag.String(`config`, ``, `path to an evaluation yaml, defaults apply when empty`)
	hashName   = flag.String(`hash`, ``, `hash evaluated by collision/avalanche/batch: `+
		strings.Join(cryptoprotect.HashCipherNames(), `, `))
)

func main() {
	flag.Parse()

	path := *configPath
	if path != `` {
		path = utils.ResolveNearBinary(path)
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		log.Fatalln(err)
	}
	if *hashName != `` {
		cfg.HashCipher = *hashName
	}

	s, err := newSession(cfg, os.Stdout)
	if err != nil {
		log.Fatalln(err)
	}
	if err = s.run(os.Stdin, isTerminal(os.Stdin)); err != nil {
		log.Fatalln(err)
	}
}
