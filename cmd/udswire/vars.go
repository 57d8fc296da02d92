package main

import (
	"flag"

	"github.com/evilsocket/islazy/log"
)

const version = "1.0.0"

var (
	debug      = false
	ver        = false
	derive     = false
	seal       = false
	open       = false
	env        = ".env"
	passphrase = ""
	keyHex     = ""
	dataHex    = ""
	hostMAC    = "00:11:22:33:44:55"
	sender     = "00:11:22:33:44:55"
	receiver   = "00:11:22:33:44:56"
	commID     = uint(1)
	sessionID  = uint(1)
	networkID  = uint(1)
	channel    = uint(1)
	srcNode    = uint(1)
	dstNode    = uint(2)
	seq        = uint(0)
)

func init() {
	flag.BoolVar(&ver, "version", ver, "Print version and exit.")
	flag.BoolVar(&debug, "debug", debug, "Enable debug logs.")
	flag.StringVar(&log.Output, "log", log.Output, "Log file path or empty for standard output.")
	flag.StringVar(&env, "env", env, "Load .env from.")

	flag.BoolVar(&derive, "derive", derive, "Derive the network CCMP key and print it.")
	flag.BoolVar(&seal, "seal", seal, "Assemble and encrypt a data frame body.")
	flag.BoolVar(&open, "open", open, "Decrypt and parse a data frame body.")

	flag.StringVar(&passphrase, "passphrase", passphrase, "Network passphrase used for key derivation.")
	flag.StringVar(&keyHex, "key", keyHex, "CCMP key as hex, alternative to -passphrase.")
	flag.StringVar(&dataHex, "data", dataHex, "Payload bytes as hex.")
	flag.StringVar(&hostMAC, "host", hostMAC, "Host MAC address of the network.")
	flag.StringVar(&sender, "sender", sender, "Sender MAC address.")
	flag.StringVar(&receiver, "receiver", receiver, "Receiver MAC address.")
	flag.UintVar(&commID, "comm-id", commID, "WLAN community id of the network.")
	flag.UintVar(&sessionID, "session-id", sessionID, "Session id of the network.")
	flag.UintVar(&networkID, "network-id", networkID, "Network id.")
	flag.UintVar(&channel, "channel", channel, "Data channel.")
	flag.UintVar(&srcNode, "src-node", srcNode, "Source node id.")
	flag.UintVar(&dstNode, "dst-node", dstNode, "Destination node id.")
	flag.UintVar(&seq, "seq", seq, "Frame sequence number.")
}
