package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/spf13/cobra"

	"github.com/cryptk/omnilogic-local/internal/protocol"
)

var pcapPort uint16

var debugParsePcapCmd = &cobra.Command{
	Use:   "parse-pcap <file>",
	Short: "Decode OmniLogic protocol datagrams captured in a pcap file",
	Long: `Reads a pcap (or pcapng) capture and decodes every UDP datagram on the
controller port as an OmniLogic wire message, printing one summary line per
datagram. This only decodes individual datagrams - it does not reassemble
fragmented multi-packet responses the way the live client does, since a
capture may not contain a complete exchange.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open capture: %w", err)
		}
		defer f.Close()

		reader, err := openPcapReader(f)
		if err != nil {
			return err
		}

		count := 0
		for {
			data, _, err := reader.ReadPacketData()
			if err == io.EOF {
				break
			}
			if err != nil {
				return fmt.Errorf("failed to read packet: %w", err)
			}

			payload := extractUDPPayload(data, pcapPort)
			if payload == nil {
				continue
			}

			msg, err := protocol.Decode(payload)
			if err != nil {
				fmt.Printf("#%d malformed datagram (%d bytes): %v\n", count, len(payload), err)
				count++
				continue
			}

			fmt.Printf("#%d id=%d type=%s client=%s compressed=%t payload_len=%d\n",
				count, msg.ID, msg.Type, msg.ClientType, msg.Compressed, len(msg.Payload))
			count++
		}

		fmt.Printf("%d datagram(s) on port %d\n", count, pcapPort)
		return nil
	},
}

// pcapReader is satisfied by both pcapgo.Reader (.pcap) and
// pcapgo.NgReader (.pcapng).
type pcapReader interface {
	ReadPacketData() (data []byte, ci gopacket.CaptureInfo, err error)
}

func openPcapReader(f *os.File) (pcapReader, error) {
	if r, err := pcapgo.NewNgReader(f, pcapgo.DefaultNgReaderOptions); err == nil {
		return r, nil
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind capture: %w", err)
	}
	r, err := pcapgo.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("not a recognized pcap or pcapng file: %w", err)
	}
	return r, nil
}

// extractUDPPayload returns the UDP payload of data if it is a UDP
// datagram to or from port, or nil otherwise.
func extractUDPPayload(data []byte, port uint16) []byte {
	packet := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
	udpLayer := packet.Layer(layers.LayerTypeUDP)
	if udpLayer == nil {
		return nil
	}
	udp, ok := udpLayer.(*layers.UDP)
	if !ok {
		return nil
	}
	if uint16(udp.SrcPort) != port && uint16(udp.DstPort) != port {
		return nil
	}
	return udp.Payload
}

func init() {
	debugParsePcapCmd.Flags().Uint16Var(&pcapPort, "port", 10444, "Controller UDP port to filter on")
	debugCmd.AddCommand(debugParsePcapCmd)
}
