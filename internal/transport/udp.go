// Package transport carries encoded blocks between two endpoints over
// UDP, framing each 19-bit tagged word as a 4-byte big-endian value.
// It follows the teacher's UDPSocket conventions: a read bounded by a
// short deadline, explicit Open/Close lifecycle, logging on every
// transition.
package transport

import (
	"encoding/binary"
	"fmt"
	"log"
	"net"
	"time"
)

// Harness carries framed blocks between a local UDP socket and a
// single configured remote peer.
type Harness struct {
	conn      *net.UDPConn
	localPort int
	remote    *net.UDPAddr
	injector  *ErrorInjector
}

// NewHarness creates a harness bound to localPort, sending to
// remoteAddress:remotePort.
func NewHarness(localPort int, remoteAddress string, remotePort int) (*Harness, error) {
	remoteIP := net.ParseIP(remoteAddress)
	if remoteIP == nil {
		ips, err := net.LookupIP(remoteAddress)
		if err != nil || len(ips) == 0 {
			return nil, fmt.Errorf("resolve remote address %s: %v", remoteAddress, err)
		}
		remoteIP = ips[0]
	}

	return &Harness{
		localPort: localPort,
		remote:    &net.UDPAddr{IP: remoteIP, Port: remotePort},
	}, nil
}

// SetErrorRate installs an error injector with the given per-bit flip
// probability. A zero rate disables injection.
func (h *Harness) SetErrorRate(rate float64) {
	h.injector = NewErrorInjector(rate)
}

// Open binds the local UDP socket.
func (h *Harness) Open() error {
	addr := &net.UDPAddr{IP: net.IPv4zero, Port: h.localPort}
	conn, err := net.ListenUDP("udp4", addr)
	if err != nil {
		log.Printf("transport: error opening UDP socket: %v", err)
		return err
	}
	h.conn = conn
	log.Printf("transport: bound to %s", conn.LocalAddr().String())
	return nil
}

// Close releases the local UDP socket.
func (h *Harness) Close() {
	if h.conn != nil {
		h.conn.Close()
		h.conn = nil
		log.Printf("transport: socket closed")
	}
}

// SendBlock frames each word as 4 big-endian bytes and sends them as
// one UDP datagram to the configured remote peer, applying the error
// injector if one is installed.
func (h *Harness) SendBlock(words []uint32) error {
	if h.conn == nil {
		return fmt.Errorf("transport: socket not open")
	}

	buf := make([]byte, 4*len(words))
	for i, w := range words {
		if h.injector != nil {
			w = h.injector.Corrupt(w)
		}
		binary.BigEndian.PutUint32(buf[i*4:], w)
	}

	_, err := h.conn.WriteToUDP(buf, h.remote)
	if err != nil {
		log.Printf("transport: write error: %v", err)
	}
	return err
}

// RecvBlock reads one datagram, waiting at most a millisecond, and
// unframes it into words. It returns (nil, nil) if no datagram arrives
// within that time. The datagram's length is not checked: the result
// holds however many whole 4-byte words arrived, up to maxWords.
func (h *Harness) RecvBlock(maxWords int) ([]uint32, error) {
	if h.conn == nil {
		return nil, fmt.Errorf("transport: socket not open")
	}

	h.conn.SetReadDeadline(time.Now().Add(time.Millisecond))
	buf := make([]byte, 4*maxWords)
	n, _, err := h.conn.ReadFromUDP(buf)
	if err != nil {
		if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
			return nil, nil
		}
		log.Printf("transport: read error: %v", err)
		return nil, err
	}

	words := make([]uint32, n/4)
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return words, nil
}
