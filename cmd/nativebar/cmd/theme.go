package cmd

import (
	"fmt"
	"os"

	"github.com/go-drift/nativebar/pkg/theme"
	"github.com/go-drift/nativebar/pkg/views"
)

func init() {
	RegisterCommand(&Command{
		Name:  "theme",
		Short: "Validate a theme file and print the effective styling",
		Long: `Validate loads nativebar.yaml from the given directory (default:
the current directory), resolves every color and prints the effective
styling per bar kind. A missing file is valid and styles nothing.`,
		Usage: "nativebar theme [dir]",
		Run:   runTheme,
	})
}

// barKinds in display order.
var barKinds = []string{
	views.BarTypeToolbar,
	views.BarTypeNavigationBar,
	views.BarTypeTabBar,
	views.BarTypeScrollableNavigationBar,
}

func runTheme(args []string) error {
	dir := "."
	if len(args) > 0 {
		dir = args[0]
	}

	cfg, err := theme.LoadOptional(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}

	var failed bool
	for _, kind := range barKinds {
		bt := cfg.For(kind)
		fmt.Printf("%s:\n", kind)

		if bt.Tint != "" {
			color, err := theme.ParseColor(bt.Tint)
			if err != nil {
				fmt.Fprintf(os.Stderr, "  tint: %v\n", err)
				failed = true
			} else {
				fmt.Printf("  tint: %s (#%08X)\n", bt.Tint, color.Packed())
			}
		} else {
			fmt.Println("  tint: platform default")
		}

		if bt.Transparent != nil {
			fmt.Printf("  transparent: %v\n", *bt.Transparent)
		}
		if bt.PillHeight != nil {
			fmt.Printf("  pillHeight: %g\n", *bt.PillHeight)
		}
		if bt.Material != "" {
			fmt.Printf("  material: %s\n", bt.Material)
		}
	}

	if failed {
		return fmt.Errorf("theme validation failed")
	}
	return nil
}
