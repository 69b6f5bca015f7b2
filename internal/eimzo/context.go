package eimzo

// UnknownIP is forwarded upstream when the client address cannot be derived
// from the inbound request at all.
const UnknownIP = "Unknown"

// RequestContext carries the inbound request attributes that must be
// replayed on the outbound call so the e-imzo server sees the original
// caller, not this gateway.
type RequestContext struct {
	// Host is the inbound Host header, forwarded verbatim.
	Host string
	// ClientIP is the derived end-client address, forwarded as X-Real-IP.
	ClientIP string
}

// ClientIP derives the end-client address. An upstream proxy's X-Real-IP
// header wins over the direct connection address; with neither available the
// UnknownIP sentinel is returned so the header is never empty.
func ClientIP(realIP, remoteAddr string) string {
	if realIP != "" {
		return realIP
	}
	if remoteAddr != "" {
		return remoteAddr
	}
	return UnknownIP
}
