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

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tracktest/iso22133/protocol"
)

var decodeFullFlag bool

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Classify and decode a single raw ISO 22133 frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeFullFlag, "full", false, "dump the full decoded host struct with go-spew")
	RootCmd.AddCommand(decodeCmd)
}

func runDecode(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()
	ctx, err := LoadContext()
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	id := protocol.ClassifyFrame(ctx, raw)
	if id == protocol.MessageIDInvalid {
		return fmt.Errorf("%s: not a recognised ISO 22133 frame", args[0])
	}

	h, err := protocol.DecodeHeader(ctx, raw)
	if err != nil {
		return fmt.Errorf("decoding header: %w", err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"field", "value"})
	table.Append([]string{"message", protocol.MessageName(id)})
	table.Append([]string{"transmitter", fmt.Sprintf("%d", h.TransmitterID)})
	table.Append([]string{"receiver", fmt.Sprintf("%d", h.ReceiverID)})
	table.Append([]string{"counter", fmt.Sprintf("%d", h.MessageCounter)})
	table.Append([]string{"ack requested", colorBool(h.AckRequest)})
	table.Render()

	if decodeFullFlag {
		spew.Dump(h)
	}
	return nil
}

// colorBool renders a validity-style boolean the way the teacher's CLI
// tools highlight pass/fail: green for the "good" state, yellow
// otherwise.
func colorBool(v bool) string {
	if v {
		return color.GreenString("true")
	}
	return color.YellowString("false")
}
