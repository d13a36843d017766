package types

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/httpurl/internal/grammar"
	"github.com/ghettovoice/httpurl/internal/util"
)

// Addr is a container for host and optional port.
type Addr struct {
	host    string
	port    uint64
	hasPort bool
}

// Host returns an [Addr] containing the provided host and no port.
func Host(host string) Addr {
	return Addr{host: host}
}

// HostPort returns an [Addr] containing the provided host and port.
func HostPort(host string, port uint64) Addr {
	return Addr{
		host:    host,
		port:    port,
		hasPort: true,
	}
}

// ParseAddr parses a "host[:port]" string into an [Addr].
// A missing, non-numeric or out of range port yields an address without port.
func ParseAddr[T ~string | ~[]byte](s T) Addr {
	host, port, ok := grammar.SplitHostPort(string(s))
	if ok {
		return HostPort(host, port)
	}
	return Host(host)
}

// Host returns the hostname portion of the address as provided during construction or parsing.
func (addr Addr) Host() string { return addr.host }

// Port returns the port, in case it is set, and bool flag indicating whether it is set.
func (addr Addr) Port() (uint64, bool) { return addr.port, addr.hasPort }

// String formats the address as host[:port].
func (addr Addr) String() string {
	if !addr.hasPort {
		return addr.host
	}
	return addr.host + ":" + strconv.FormatUint(addr.port, 10)
}

// RenderTo writes the address as host[:port] to the writer.
func (addr Addr) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, addr.String()))
}

// Format implements fmt.Formatter to support custom formatting verbs for Addr values.
func (addr Addr) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, addr.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(addr.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, addr.String())
			return
		}

		type hideMethods Addr
		type Addr hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), Addr(addr))
		return
	}
}

// Equal reports whether the address equals the provided value, accepting Addr and *Addr.
// Hosts are compared case-insensitively.
func (addr Addr) Equal(val any) bool {
	var other Addr
	switch v := val.(type) {
	case Addr:
		other = v
	case *Addr:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	return util.EqFold(addr.host, other.host) && addr.port == other.port && addr.hasPort == other.hasPort
}

// IsZero reports whether the address has zero host and port information.
func (addr Addr) IsZero() bool { return addr.host == "" && !addr.hasPort }

// MarshalText encodes the address into its textual representation.
func (addr Addr) MarshalText() (text []byte, err error) {
	return []byte(addr.String()), nil
}

// UnmarshalText parses a textual representation of an address into the receiver.
func (addr *Addr) UnmarshalText(text []byte) error {
	*addr = ParseAddr(text)
	return nil
}
