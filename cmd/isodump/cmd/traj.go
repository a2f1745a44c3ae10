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

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/tracktest/iso22133/protocol"
)

var trajCmd = &cobra.Command{
	Use:   "traj [file]",
	Short: "Decode a TRAJ frame and print its points",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraj,
}

var trajStatsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Decode a TRAJ frame and print jitter/curvature statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runTrajStats,
}

func init() {
	trajCmd.AddCommand(trajStatsCmd)
	RootCmd.AddCommand(trajCmd)
}

func decodeTrajFile(ctx *protocol.Context, path string) (protocol.TrajectoryHeader, []protocol.TrajectoryPoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return protocol.TrajectoryHeader{}, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := protocol.VerifyTrajCRC(ctx, raw); err != nil {
		return protocol.TrajectoryHeader{}, nil, fmt.Errorf("verifying traj crc: %w", err)
	}
	header, offset, err := protocol.DecodeTrajHeader(ctx, raw)
	if err != nil {
		return protocol.TrajectoryHeader{}, nil, fmt.Errorf("decoding traj header: %w", err)
	}
	points := make([]protocol.TrajectoryPoint, 0, header.NumberOfPoints)
	for i := uint32(0); i < header.NumberOfPoints; i++ {
		p, n, err := protocol.DecodeTrajPoint(raw[offset:])
		if err != nil {
			return protocol.TrajectoryHeader{}, nil, fmt.Errorf("decoding traj point %d: %w", i, err)
		}
		points = append(points, p)
		offset += n
	}
	return header, points, nil
}

func runTraj(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()
	ctx, err := LoadContext()
	if err != nil {
		return err
	}

	header, points, err := decodeTrajFile(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("trajectory %q (id=%d, version=%d): %d points\n", header.Name, header.TrajectoryID, header.Version, len(points))

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"t(s)", "x(m)", "y(m)", "z(m)", "heading(rad)", "long speed(m/s)"})
	for _, p := range points {
		table.Append([]string{
			fmt.Sprintf("%.3f", p.RelativeTimeS),
			fmt.Sprintf("%.3f", p.Position.XM),
			fmt.Sprintf("%.3f", p.Position.YM),
			fmt.Sprintf("%.3f", p.Position.ZM),
			fmt.Sprintf("%.4f", p.Position.HeadingRad),
			fmt.Sprintf("%.2f", p.Speed.LongitudinalMS),
		})
	}
	table.Render()
	return nil
}

func runTrajStats(_ *cobra.Command, args []string) error {
	ConfigureVerbosity()
	ctx, err := LoadContext()
	if err != nil {
		return err
	}

	_, points, err := decodeTrajFile(ctx, args[0])
	if err != nil {
		return err
	}

	stats := protocol.NewTrajStats()
	for _, p := range points {
		stats.Add(p)
	}

	fmt.Printf("points: %d\n", stats.Count())
	fmt.Printf("interval mean/stddev: %.4fs / %.4fs\n", stats.IntervalMeanS(), stats.IntervalStddevS())
	fmt.Printf("curvature mean/stddev: %.6f / %.6f\n", stats.CurvatureMean(), stats.CurvatureStddev())
	return nil
}
