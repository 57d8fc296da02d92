package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/evilsocket/islazy/log"
	"github.com/joho/godotenv"
	"github.com/udslab/udswire/crypto"
	"github.com/udslab/udswire/wifi"
)

const slotKeyVar = "UDSWIRE_SLOT_KEY"

// reads the hardware slot key from the environment, usually loaded from .env
func slotKey(slot int) ([]byte, error) {
	value := os.Getenv(slotKeyVar)
	if value == "" {
		return nil, fmt.Errorf("%s is not set", slotKeyVar)
	}

	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %v", slotKeyVar, err)
	} else if len(key) != 16 {
		return nil, fmt.Errorf("%s must be 16 bytes, got %d", slotKeyVar, len(key))
	}

	return key, nil
}

func networkInfo() wifi.NetworkInfo {
	mac, err := net.ParseMAC(hostMAC)
	if err != nil {
		log.Fatal("invalid host MAC %s: %v", hostMAC, err)
	}

	return wifi.NetworkInfo{
		HostMAC:    mac,
		WlanCommID: uint32(commID),
		ID:         uint16(sessionID),
		NetworkID:  uint16(networkID),
	}
}

func ccmpKey() []byte {
	if keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil {
			log.Fatal("could not decode -key: %v", err)
		}
		return key
	}

	if passphrase == "" {
		log.Fatal("either -key or -passphrase is required")
	}

	key, err := crypto.DeriveCCMPKey([]byte(passphrase), networkInfo(), slotKey)
	if err != nil {
		log.Fatal("%v", err)
	}

	return key
}

func addresses() (net.HardwareAddr, net.HardwareAddr) {
	from, err := net.ParseMAC(sender)
	if err != nil {
		log.Fatal("invalid sender MAC %s: %v", sender, err)
	}

	to, err := net.ParseMAC(receiver)
	if err != nil {
		log.Fatal("invalid receiver MAC %s: %v", receiver, err)
	}

	return from, to
}

func doSeal() {
	data, err := hex.DecodeString(dataHex)
	if err != nil {
		log.Fatal("could not decode -data: %v", err)
	}

	err, body := wifi.AssemblePayload(data, uint8(channel), uint16(dstNode), uint16(srcNode), uint16(seq))
	if err != nil {
		log.Fatal("%v", err)
	}

	from, to := addresses()
	sealed, err := crypto.Encrypt(body, ccmpKey(), from, to, uint16(seq))
	if err != nil {
		log.Fatal("%v", err)
	}

	fmt.Printf("%x\n", sealed)
}

func doOpen() {
	sealed, err := hex.DecodeString(dataHex)
	if err != nil {
		log.Fatal("could not decode -data: %v", err)
	}

	from, to := addresses()
	body, err := crypto.Decrypt(sealed, ccmpKey(), from, to, uint16(seq))
	if err != nil {
		log.Fatal("%v", err)
	}

	err, header, data := wifi.ParsePayload(body)
	if err != nil {
		log.Fatal("%v", err)
	}

	log.Info("channel %d seq %d node %d -> %d (%d bytes)",
		header.DataChannel, header.SequenceNumber, header.SrcNodeID, header.DestNodeID, len(data))

	fmt.Printf("%x\n", data)
}

func main() {
	flag.Parse()

	if ver {
		fmt.Println(version)
		return
	}

	if debug {
		log.Level = log.DEBUG
	} else {
		log.Level = log.INFO
	}
	log.OnFatal = log.ExitOnFatal

	if err := log.Open(); err != nil {
		panic(err)
	}
	defer log.Close()

	if err := godotenv.Load(env); err != nil {
		log.Debug("%v", err)
	}

	if derive {
		key, err := crypto.DeriveCCMPKey([]byte(passphrase), networkInfo(), slotKey)
		if err != nil {
			log.Fatal("%v", err)
		}
		fmt.Printf("%x\n", key)
	} else if seal {
		doSeal()
	} else if open {
		doOpen()
	} else {
		flag.Usage()
	}
}
