/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cmd

import (
	"os"

	yaml "gopkg.in/yaml.v2"

	"github.com/tracktest/iso22133/protocol"
)

// Config is isodump's on-disk configuration: the small handful of
// operator-set defaults the codec itself never reads from a file (§6.3
// of the codec's own spec puts persistent configuration out of scope
// for the core library, not for this CLI).
type Config struct {
	TransmitterID   uint8 `yaml:"transmitter_id"`
	CRCVerification bool  `yaml:"crc_verification"`
}

// DefaultConfig mirrors protocol.NewContext's defaults.
func DefaultConfig() *Config {
	return &Config{
		TransmitterID:   protocol.DefaultTransmitterID,
		CRCVerification: true,
	}
}

// ReadConfig reads a Config from a YAML file.
func ReadConfig(path string) (*Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ToContext builds a protocol.Context from c.
func (c *Config) ToContext() *protocol.Context {
	return &protocol.Context{
		TransmitterID:   c.TransmitterID,
		CRCVerification: c.CRCVerification,
	}
}
