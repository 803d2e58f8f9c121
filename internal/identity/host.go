package identity

import (
	"math/big"
	"os"
	"os/user"
	"runtime"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Host derives identifiers from characteristics of the machine the client
// runs on. Identifiers are computed once at construction.
type Host struct {
	user   string
	device string
}

type hostInfo struct {
	hostname string
	username string
	goos     string
	goarch   string
	cpus     int
}

// NewHost inspects the current machine. Missing characteristics are replaced
// by fixed placeholders so the result stays stable on the same host.
func NewHost() *Host {
	info := hostInfo{
		hostname: "unknown-host",
		username: "unknown-user",
		goos:     runtime.GOOS,
		goarch:   runtime.GOARCH,
		cpus:     runtime.NumCPU(),
	}
	if h, err := os.Hostname(); err == nil && h != "" {
		info.hostname = h
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		info.username = u.Username
	}
	return newHost(info)
}

func newHost(info hostInfo) *Host {
	device := []string{info.hostname, info.goos, info.goarch, strconv.Itoa(info.cpus)}
	return &Host{
		user:   "user_" + digest(append([]string{info.username}, device...)),
		device: "device_" + digest(device),
	}
}

func (h *Host) UserIdentifier() string   { return h.user }
func (h *Host) DeviceIdentifier() string { return h.device }

// digest returns the base36 form of the first 16 bytes of a BLAKE2b-256 sum.
func digest(parts []string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "|")))
	return new(big.Int).SetBytes(sum[:16]).Text(36)
}
