package cmd

import (
	"fmt"
	"os"

	"golang.org/x/mod/semver"

	"github.com/go-drift/nativebar/pkg/platform"
)

func init() {
	RegisterCommand(&Command{
		Name:  "protocol",
		Short: "Print the bridge protocol version or check compatibility",
		Long: `Protocol prints the bridge protocol version this library speaks.
Given a version argument it checks whether a native implementation
reporting that version is compatible: majors must match.`,
		Usage: "nativebar protocol [native-version]",
		Run:   runProtocol,
	})
}

func runProtocol(args []string) error {
	if len(args) == 0 {
		fmt.Println(platform.ProtocolVersion)
		return nil
	}

	native := args[0]
	if !semver.IsValid(native) {
		err := fmt.Errorf("invalid version %q (want vMAJOR.MINOR.PATCH)", native)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	if semver.Major(native) != semver.Major(platform.ProtocolVersion) {
		err := fmt.Errorf("incompatible: native %s, library %s", native, platform.ProtocolVersion)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	fmt.Printf("compatible: native %s, library %s\n", native, platform.ProtocolVersion)
	return nil
}
