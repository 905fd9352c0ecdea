package cmd

import (
	"fmt"
	"os"
	"path/filepath"
)

func init() {
	RegisterCommand(&Command{
		Name:  "init",
		Short: "Write a starter nativebar.yaml",
		Long: `Init writes a commented starter nativebar.yaml into the given
directory (default: the current directory). It refuses to overwrite an
existing file.`,
		Usage: "nativebar init [dir]",
		Run:   runInit,
	})
}

const starterTheme = `# nativebar theme configuration.
# defaults apply to every bar kind; entries under bars override per kind.
defaults:
  # tint: orangered        # SVG color name or hex (#RRGGBB / #AARRGGBB)
  # transparent: false

bars:
  toolbar:
    # material: regular    # native blur material, forwarded opaquely
  tabBar:
    # pillHeight: 40
`

func runInit(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	path := filepath.Join(dir, "nativebar.yaml")
	if _, err := os.Stat(path); err == nil {
		err := fmt.Errorf("%s already exists", path)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	if err := os.WriteFile(path, []byte(starterTheme), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
