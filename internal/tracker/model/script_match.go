package model

// ScriptMatch is the decoded form of an output script: either a single address or
// Undecoded for scripts that do not resolve to exactly one address.
type ScriptMatch struct {
	address string
}

// AddressMatch returns a ScriptMatch for a decoded address.
func AddressMatch(address string) ScriptMatch {
	return ScriptMatch{address: address}
}

// Undecoded returns the ScriptMatch of a script without a single address.
func Undecoded() ScriptMatch {
	return ScriptMatch{}
}

// Address returns the decoded address and whether there is one.
func (m ScriptMatch) Address() (string, bool) {
	return m.address, m.address != ""
}
