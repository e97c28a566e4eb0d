// Package ssdp implements the control-point side of SSDP: multicast
// M-SEARCH queries and collection of the unicast responses that
// announce media servers and renderers on the network.
package ssdp

import (
	"bufio"
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"gargoton.petite-maison-orange.fr/eric/pmocontrol/netutils"
)

const (
	SsdpAddr = "239.255.255.250"
	Port     = 1900

	// STAll matches every SSDP device.
	STAll = "ssdp:all"
	// STMediaServer matches UPnP content directories.
	STMediaServer = "urn:schemas-upnp-org:device:MediaServer:1"
	// STMediaRenderer matches UPnP renderers.
	STMediaRenderer = "urn:schemas-upnp-org:device:MediaRenderer:1"
)

// Device is one discovery response: where the device description
// lives and how it identifies itself.
type Device struct {
	UUID     string
	Location string
	Server   string
	ST       string
	USN      string
}

// Discover multicasts an M-SEARCH for st and collects every response
// received within timeout. The context can cut the wait short.
func Discover(ctx context.Context, st string, timeout time.Duration) ([]*Device, error) {
	localIP, err := netutils.GuessLocalIP()
	if err != nil {
		return nil, err
	}
	conn, err := net.ListenUDP("udp4", &net.UDPAddr{IP: net.ParseIP(localIP)})
	if err != nil {
		return nil, fmt.Errorf("opening discovery socket: %w", err)
	}
	defer conn.Close()

	mx := int(timeout.Seconds())
	if mx < 1 {
		mx = 1
	}
	msg := fmt.Sprintf(`M-SEARCH * HTTP/1.1
HOST: %s:%d
MAN: "ssdp:discover"
MX: %d
ST: %s

`, SsdpAddr, Port, mx, st)
	msg = strings.ReplaceAll(msg, "\n", "\r\n")

	dst := &net.UDPAddr{IP: net.ParseIP(SsdpAddr), Port: Port}
	if _, err := conn.WriteToUDP([]byte(msg), dst); err != nil {
		return nil, fmt.Errorf("sending M-SEARCH: %w", err)
	}
	log.Infof("📡 M-SEARCH sent for ST=%s", st)

	deadline := time.Now().Add(timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	conn.SetReadDeadline(deadline)

	var devices []*Device
	seen := map[string]bool{}
	buf := make([]byte, 8192)
	for {
		if err := ctx.Err(); err != nil {
			return devices, err
		}
		n, src, err := conn.ReadFromUDP(buf)
		if err != nil {
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				break
			}
			return devices, fmt.Errorf("reading discovery responses: %w", err)
		}
		device := parseResponse(string(buf[:n]))
		if device == nil {
			continue
		}
		if seen[device.USN] {
			continue
		}
		seen[device.USN] = true
		devices = append(devices, device)
		log.Infof("✅ Device found at %v: %s", src, device.Location)
	}

	return devices, nil
}

// parseResponse decodes one unicast M-SEARCH response. Responses that
// are not a 200 or carry no LOCATION are dropped.
func parseResponse(data string) *Device {
	scanner := bufio.NewScanner(strings.NewReader(data))
	if !scanner.Scan() || !strings.Contains(scanner.Text(), "200") {
		return nil
	}
	if !strings.HasPrefix(scanner.Text(), "HTTP/1.1") {
		return nil
	}

	d := &Device{}
	for scanner.Scan() {
		line := scanner.Text()
		colon := strings.Index(line, ":")
		if colon < 0 {
			continue
		}
		key := strings.ToUpper(strings.TrimSpace(line[:colon]))
		value := strings.TrimSpace(line[colon+1:])
		switch key {
		case "LOCATION":
			d.Location = value
		case "SERVER":
			d.Server = value
		case "ST":
			d.ST = value
		case "USN":
			d.USN = value
		}
	}

	if d.Location == "" {
		return nil
	}
	d.UUID = uuidFromUSN(d.USN)
	return d
}

// uuidFromUSN extracts the device UUID from a "uuid:xxx::urn:..." USN.
// A response without a usable USN still gets a stable random identity
// so callers can key on it.
func uuidFromUSN(usn string) string {
	if rest, ok := strings.CutPrefix(usn, "uuid:"); ok {
		if sep := strings.Index(rest, "::"); sep >= 0 {
			rest = rest[:sep]
		}
		if rest != "" {
			return rest
		}
	}
	id := uuid.New().String()
	log.Debugf("🐞 No UUID in USN %q, assigned %s", usn, id)
	return id
}
