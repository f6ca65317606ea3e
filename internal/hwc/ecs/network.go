package ecs

import "net/netip"

// ClassifyAddress reports an address as private when it falls in RFC 1918,
// RFC 4193, loopback or link-local space. Anything else, including input that
// is not an IP address at all, is public.
func ClassifyAddress(addr string) AddressType {
	typ, _ := classifyAddress(addr)
	return typ
}

// classifyAddress also reports whether addr parsed as an IP address.
func classifyAddress(addr string) (AddressType, bool) {
	ip, err := netip.ParseAddr(addr)
	if err != nil {
		return AddressPublic, false
	}
	ip = ip.Unmap()
	if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() {
		return AddressPrivate, true
	}
	return AddressPublic, true
}
