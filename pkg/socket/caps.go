package socket

// platformCaps describes the syscall surface differences this package
// has to bridge. It is resolved once at startup so the listen/bind
// algorithm itself stays platform-agnostic.
type platformCaps struct {
	// noSigPipeOpt is the SOL_SOCKET option suppressing SIGPIPE on the
	// socket itself, or 0 on platforms without one.
	noSigPipeOpt int

	// sendFlags is passed to sendmsg on every write. Platforms without
	// a socket-level SIGPIPE option suppress the signal per send.
	sendFlags int
}

var caps = resolveCaps()
