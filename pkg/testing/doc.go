// Package testing provides a harness for testing widget trees.
//
// # Quick Start
//
// Create a tester, build widgets into its tree, and make assertions:
//
//	func TestSidebar(t *testing.T) {
//	    tester := dockuitest.NewTesterWithT(t)
//	    p := tester.Tree().NewPanel("sidebar")
//	    p.SetDock(layout.Dock{State: layout.DockLeft, Size: 200})
//	    tester.Tree().AddChild(tester.Tree().Root(), p.Handle())
//
//	    if !tester.Find(dockuitest.ByName("sidebar")).Exists() {
//	        t.Error("expected sidebar")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the resolved widget tree and one frame of draw calls, and compare
// them against a golden file:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/sidebar.snapshot.json")
//
// Update snapshots with:
//
//	DOCKUI_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import dockuitest "github.com/go-drift/dockui/pkg/testing"
package testing
