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

// isoshark is a poor man's tshark for ISO 22133 traffic: it reads an
// already-captured .pcap/.pcapng file and dumps the ISO 22133 frames it
// finds, the same way pshark does for PTP. It performs no socket I/O and
// no reassembly of its own; gopacket/pcapgo own the framing.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	log "github.com/sirupsen/logrus"

	"github.com/tracktest/iso22133/protocol"
)

// defaultPort is the UDP port isoshark assumes carries ISO 22133 frames
// absent an explicit -port flag. No port is standardized by ISO 22133
// itself; this is purely a capture-filtering default.
const defaultPort = 53240

// LayerISO22133 wraps one decoded ISO 22133 frame for gopacket.
type LayerISO22133 struct {
	layers.BaseLayer

	MessageID uint16
	Header    protocol.Header
}

// LayerTypeISO22133 is registered as a gopacket layer type.
var LayerTypeISO22133 = gopacket.RegisterLayerType(
	22133,
	gopacket.LayerTypeMetadata{
		Name:    "ISO22133",
		Decoder: gopacket.DecodeFunc(decodeISO22133),
	},
)

// LayerType returns the type this layer implements.
func (l *LayerISO22133) LayerType() gopacket.LayerType {
	return LayerTypeISO22133
}

// Payload is empty; ISO 22133 frames are self-contained.
func (l *LayerISO22133) Payload() []byte {
	return nil
}

func decodeISO22133(data []byte, p gopacket.PacketBuilder) error {
	ctx := protocol.NewContext()
	h, err := protocol.DecodeHeader(ctx, data)
	if err != nil {
		return fmt.Errorf("decoding ISO 22133 header: %w", err)
	}
	d := &LayerISO22133{
		BaseLayer: layers.BaseLayer{Contents: data},
		MessageID: h.MessageID,
		Header:    h,
	}
	p.AddLayer(d)
	p.SetApplicationLayer(d)
	return nil
}

type packetHandle interface {
	gopacket.PacketDataSource
	LinkType() layers.LinkType
}

func run(input string, port int) error {
	layers.RegisterUDPPortLayerType(layers.UDPPort(port), LayerTypeISO22133)

	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	var handle packetHandle
	handle, err = pcapgo.NewNgReader(f, pcapgo.DefaultNgReaderOptions)
	if err != nil {
		if _, serr := f.Seek(0, 0); serr != nil {
			return fmt.Errorf("seeking in %s: %w", input, serr)
		}
		handle, err = pcapgo.NewReader(f)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", input, err)
		}
	}

	packetSource := gopacket.NewPacketSource(handle, handle.LinkType())
	for packet := range packetSource.Packets() {
		isoLayer := packet.Layer(LayerTypeISO22133)
		if isoLayer == nil {
			continue
		}
		frame, _ := isoLayer.(*LayerISO22133)

		var srcIP, dstIP net.IP
		var srcPort, dstPort layers.UDPPort
		if ip6 := packet.Layer(layers.LayerTypeIPv6); ip6 != nil {
			ip, _ := ip6.(*layers.IPv6)
			srcIP, dstIP = ip.SrcIP, ip.DstIP
		} else if ip4 := packet.Layer(layers.LayerTypeIPv4); ip4 != nil {
			ip, _ := ip4.(*layers.IPv4)
			srcIP, dstIP = ip.SrcIP, ip.DstIP
		}
		if udp := packet.Layer(layers.LayerTypeUDP); udp != nil {
			u, _ := udp.(*layers.UDP)
			srcPort, dstPort = u.SrcPort, u.DstPort
		}

		spew.Printf("%s -> %s  %s\n",
			net.JoinHostPort(srcIP.String(), strconv.Itoa(int(srcPort))),
			net.JoinHostPort(dstIP.String(), strconv.Itoa(int(dstPort))),
			protocol.MessageName(frame.MessageID),
		)
		spew.Dump(frame.Header)
		spew.Println()

		if errLayer := packet.ErrorLayer(); errLayer != nil {
			log.Warnf("failed to fully decode a packet: %v", errLayer.Error())
		}
	}
	return nil
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "isoshark: ISO 22133 poor man's tshark. Dumps ISO 22133 frames parsed from a capture file to stdout.\nUsage:\n")
		fmt.Fprintf(flag.CommandLine.Output(), "%s [file]\n", os.Args[0])
		fmt.Fprint(flag.CommandLine.Output(), "where [file] is any .pcap or .pcapng packet capture\n")
		flag.PrintDefaults()
	}
	port := flag.Int("port", defaultPort, "UDP port carrying ISO 22133 traffic in the capture")
	flag.Parse()
	if len(flag.Args()) != 1 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(flag.Arg(0), *port); err != nil {
		log.Fatal(err)
	}
}
