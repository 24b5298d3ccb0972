// SPDX-LICENSE-IDENTIFIER: GPL-2.0-ONLY
// (C) 2024 Author: <kisfg@hotmail.com>

package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	defErr "sm3lab/defErr"

	"gopkg.in/yaml.v3"
)

type (
	CollisionConfig struct {
		Pairs     int    `yaml:"Pairs"`
		MaxLen    int    `yaml:"MaxLen"`
		IndexPath string `yaml:"IndexPath"` // empty keeps the digest index in memory
	}
	AvalancheConfig struct {
		Trials int `yaml:"Trials"`
		MinLen int `yaml:"MinLen"`
		MaxLen int `yaml:"MaxLen"`
	}
	BatchConfig struct {
		Message         string  `yaml:"Message"`
		TestsPerLevel   int     `yaml:"TestsPerLevel"`
		FlipProbability float64 `yaml:"FlipProbability"`
	}
	EvalConfig struct {
		HashCipher string          `yaml:"HashCipher"`
		Seed       int64           `yaml:"Seed"` // 0 picks a fresh seed per run
		Collision  CollisionConfig `yaml:"Collision"`
		Avalanche  AvalancheConfig `yaml:"Avalanche"`
		Batch      BatchConfig     `yaml:"Batch"`
	}
)

const (
	DefaultHashCipher      = `sm3`
	DefaultPairs           = 10000
	DefaultCollisionMaxLen = 128
	DefaultTrials          = 1000
	DefaultAvalancheMinLen = 10
	DefaultAvalancheMaxLen = 109
	DefaultBatchMessage    = `This is a test message for avalanche effect testing.`
	DefaultTestsPerLevel   = 100
	DefaultFlipProbability = 0.01
)

var ErrInvalidConfig = errors.New(`invalid configuration`)

var safe_read_eval sync.RWMutex

// fields a YAML file leaves out keep these values, explicit zeros are kept.
func Default() *EvalConfig {
	return &EvalConfig{
		HashCipher: DefaultHashCipher,
		Collision: CollisionConfig{
			Pairs:  DefaultPairs,
			MaxLen: DefaultCollisionMaxLen,
		},
		Avalanche: AvalancheConfig{
			Trials: DefaultTrials,
			MinLen: DefaultAvalancheMinLen,
			MaxLen: DefaultAvalancheMaxLen,
		},
		Batch: BatchConfig{
			Message:         DefaultBatchMessage,
			TestsPerLevel:   DefaultTestsPerLevel,
			FlipProbability: DefaultFlipProbability,
		},
	}
}

func invalid(format string, v ...any) error {
	return defErr.Concat(ErrInvalidConfig, fmt.Sprintf(format, v...))
}

func (cfg *EvalConfig) Validate() error {
	var err error
	if cfg.Collision.Pairs < 0 {
		err = defErr.PushErrorToErrChain(err, invalid(`Collision.Pairs < 0: %d`, cfg.Collision.Pairs))
	}
	if cfg.Collision.MaxLen < 1 {
		err = defErr.PushErrorToErrChain(err, invalid(`Collision.MaxLen < 1: %d`, cfg.Collision.MaxLen))
	}
	if cfg.Avalanche.Trials < 0 {
		err = defErr.PushErrorToErrChain(err, invalid(`Avalanche.Trials < 0: %d`, cfg.Avalanche.Trials))
	}
	if cfg.Avalanche.MinLen < 1 || cfg.Avalanche.MinLen > cfg.Avalanche.MaxLen {
		err = defErr.PushErrorToErrChain(err, invalid(`Avalanche length range [%d, %d]`,
			cfg.Avalanche.MinLen, cfg.Avalanche.MaxLen))
	}
	if cfg.Batch.Message == `` {
		err = defErr.PushErrorToErrChain(err, invalid(`Batch.Message is empty`))
	}
	if cfg.Batch.TestsPerLevel < 0 {
		err = defErr.PushErrorToErrChain(err, invalid(`Batch.TestsPerLevel < 0: %d`, cfg.Batch.TestsPerLevel))
	}
	if cfg.Batch.FlipProbability < 0 || cfg.Batch.FlipProbability > 1 {
		err = defErr.PushErrorToErrChain(err, invalid(`Batch.FlipProbability outside [0, 1]: %g`,
			cfg.Batch.FlipProbability))
	}
	return err
}

func ParseEvalYAML(path string) (*EvalConfig, error) {
	safe_read_eval.RLock()
	cfg_data, err := os.ReadFile(path)
	safe_read_eval.RUnlock()
	if err != nil {
		log.Println(err.Error())
		return nil, defErr.DescribeThenConcat(`read `+path, err)
	}
	res := Default()
	if err = yaml.Unmarshal(cfg_data, res); err != nil {
		log.Println(err.Error())
		return nil, defErr.Concat(ErrInvalidConfig, err.Error())
	}
	if err = res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}

// empty path gives the defaults.
func LoadOrDefault(path string) (*EvalConfig, error) {
	if path == `` {
		return Default(), nil
	}
	return ParseEvalYAML(path)
}

func (cfg *EvalConfig) Dump() ([]byte, error) {
	return yaml.Marshal(cfg)
}
