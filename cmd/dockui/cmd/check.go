package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-drift/dockui/pkg/uidata"
	"github.com/go-drift/dockui/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate layout files",
		Long: `Decode each layout file and report the first bad field in each.

Exits with an error if any file fails to load.`,
		Usage: "dockui check <file>...",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	p, err := loadProject(args)
	if err != nil {
		return err
	}
	if len(p.files) == 0 {
		return fmt.Errorf("at least one layout file is required\n\nUsage: dockui check <file>...")
	}

	failed := 0
	for _, f := range p.files {
		data, err := os.ReadFile(f)
		if err == nil {
			tree := widgets.NewTree(p.cfg.Window, p.theme)
			_, err = uidata.Loader{Dir: filepath.Dir(f)}.Load(data, tree, tree.Root())
		}
		if err != nil {
			failed++
			fmt.Fprintf(stdout, "FAIL %s: %v\n", f, err)
			continue
		}
		fmt.Fprintf(stdout, "ok   %s\n", f)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(p.files))
	}
	return nil
}
