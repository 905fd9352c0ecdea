package platform

import (
	"fmt"
	"sync"

	"golang.org/x/mod/semver"

	"github.com/go-drift/nativebar/pkg/errors"
)

// ProtocolVersion is the bridge protocol version this library speaks.
// The native side must report the same major version.
const ProtocolVersion = "v1.2.0"

// bridgeChannelName carries handshake traffic, not bar traffic.
const bridgeChannelName = "nativebar/bridge"

var (
	protocolMu      sync.Mutex
	protocolChecked bool
	protocolErr     error
)

// VerifyProtocol performs the one-time protocol handshake with the native
// side. The first call asks native for its protocol version and validates it
// against ProtocolVersion; later calls return the cached result. Native
// implementations that predate the handshake return no version, which is
// accepted for compatibility.
func VerifyProtocol() error {
	protocolMu.Lock()
	defer protocolMu.Unlock()
	if protocolChecked {
		return protocolErr
	}

	res, err := invokeNative(bridgeChannelName, "protocolVersion", nil)
	if err != nil {
		// Bridge unavailable is not a handshake failure; retry on next call.
		return err
	}

	protocolChecked = true
	protocolErr = checkProtocolVersion(ParseString(res))
	if protocolErr != nil {
		errors.Report(&errors.BridgeError{
			Op:      "platform.VerifyProtocol",
			Kind:    errors.KindProtocol,
			Channel: bridgeChannelName,
			Err:     protocolErr,
		})
	}
	return protocolErr
}

// checkProtocolVersion validates a native-reported version string.
func checkProtocolVersion(native string) error {
	if native == "" {
		return nil
	}
	if !semver.IsValid(native) {
		return fmt.Errorf("%w: native reported invalid version %q", ErrProtocolMismatch, native)
	}
	if semver.Major(native) != semver.Major(ProtocolVersion) {
		return fmt.Errorf("%w: native %s, library %s", ErrProtocolMismatch, native, ProtocolVersion)
	}
	return nil
}
