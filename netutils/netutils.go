// Package netutils groups the small network address helpers the
// discovery layer needs.
package netutils

import "net"

// GuessLocalIP returns the local address the OS would route multicast
// traffic from. No packet is sent; the dial only resolves a route.
func GuessLocalIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1", nil
	}
	defer conn.Close()

	localAddr := conn.LocalAddr().(*net.UDPAddr)
	return localAddr.IP.String(), nil
}

// ListAllIPs returns the IPv4 addresses of every interface that is up,
// keyed by interface name. Loopback addresses are skipped.
func ListAllIPs() map[string][]string {
	result := make(map[string][]string)

	ifaces, err := net.Interfaces()
	if err != nil {
		result["error"] = []string{err.Error()}
		return result
	}

	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 {
			continue
		}

		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}

		var ips []string
		for _, addr := range addrs {
			var ip net.IP
			switch v := addr.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}

			if ip == nil || ip.To4() == nil || ip.IsLoopback() {
				continue
			}
			ips = append(ips, ip.String())
		}

		if len(ips) > 0 {
			result[iface.Name] = ips
		}
	}

	return result
}
