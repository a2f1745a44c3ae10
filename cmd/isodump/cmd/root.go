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
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tracktest/iso22133/protocol"
)

// RootCmd is isodump's entry point, exported so it can be extended
// without touching the core decoding logic.
var RootCmd = &cobra.Command{
	Use:   "isodump",
	Short: "Swiss Army Knife for ISO 22133 frames",
}

var rootVerboseFlag bool
var rootConfigFlag string

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().StringVarP(&rootConfigFlag, "config", "c", "", "path to an isodump config file")
}

// ConfigureVerbosity sets log verbosity based on parsed flags. Every
// subcommand that logs must call this first.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// LoadContext builds a protocol.Context from the configured defaults,
// optionally overridden by -c/--config, and wires a logrus-backed debug
// sink when verbose output is enabled.
func LoadContext() (*protocol.Context, error) {
	cfg := DefaultConfig()
	if rootConfigFlag != "" {
		loaded, err := ReadConfig(rootConfigFlag)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", rootConfigFlag, err)
		}
		cfg = loaded
	}
	ctx := cfg.ToContext()
	if rootVerboseFlag {
		ctx.Debug = true
		ctx.Sink = func(format string, args ...any) {
			log.Debugf(format, args...)
		}
	}
	return ctx, nil
}

// Execute is isodump's main CLI entry point.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
