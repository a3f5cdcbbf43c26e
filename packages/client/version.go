package client

// Version is the library semantic version (injected via -ldflags at build
// time optionally).
var Version = "1.1.0"

// DefaultUserAgent is sent when the configuration does not name a user agent.
var DefaultUserAgent = "vane/" + Version
