package socket

// Signature is the identity record of a socket: the configured
// family/kind/protocol triple plus, once Listen has succeeded, the
// bound address with its hostname and port, and whether a security
// delegate is attached. Address, Hostname, and Port stay unset until
// Listen commits them.
type Signature struct {
	Family   AddressFamily
	Kind     SocketKind
	Protocol SocketProtocol
	Address  *Address
	Hostname string
	Port     int
	Secure   bool
}
