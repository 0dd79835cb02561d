package domain

import "testing"

func newTestController() *Controller {
	c := NewController(Layout{SidebarWidth: 320, CollapsedSidebarWidth: 64})
	c.SetViewportWidth(1320) // container width 1000 with expanded sidebar
	return c
}

func TestDragClampsAtUpperBound(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.Select("src-1")

	// +250px over a 1000px container is a +25 point delta: 50 -> 70
	// clamped, not 75.
	c.BeginDrag(400)
	c.Drag(650)
	if got := c.SplitRatio(); got != MaxSplitRatio {
		t.Fatalf("ratio = %v, want %v", got, MaxSplitRatio)
	}
	c.EndDrag()

	c.BeginDrag(400)
	c.Drag(0)
	if got := c.SplitRatio(); got != MinSplitRatio {
		t.Fatalf("ratio = %v, want %v", got, MinSplitRatio)
	}
}

func TestCloseResetsLayoutButKeepsRatio(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.Select("src-1")
	c.BeginDrag(500)
	c.Drag(600) // +10 points -> 60
	c.EndDrag()

	c.Close()
	if c.Open() {
		t.Fatal("panel still open after Close")
	}
	transcript, panel := c.PaneWidths()
	if panel != 0 || transcript != 1000 {
		t.Fatalf("closed panes = %d/%d, want 1000/0", transcript, panel)
	}

	c.Select("src-2")
	if got := c.SplitRatio(); got != 60 {
		t.Fatalf("reopened ratio = %v, want 60", got)
	}
}

func TestDragInertWithoutSelection(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.BeginDrag(400)
	c.Drag(900)
	if c.Dragging() {
		t.Fatal("drag started on a closed panel")
	}
	if got := c.SplitRatio(); got != DefaultSplitRatio {
		t.Fatalf("ratio moved on closed panel: %v", got)
	}
}

func TestContainerWidthTracksSidebarState(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.Select("src-1")

	transcript, panel := c.PaneWidths()
	if transcript+panel != 1000 {
		t.Fatalf("expanded container = %d, want 1000", transcript+panel)
	}

	c.SetSidebarCollapsed(true)
	transcript, panel = c.PaneWidths()
	if transcript+panel != 1256 {
		t.Fatalf("collapsed container = %d, want 1256", transcript+panel)
	}
}

func TestDragEndsCleanly(t *testing.T) {
	t.Parallel()

	c := newTestController()
	c.Select("src-1")
	c.BeginDrag(500)
	c.EndDrag()

	// Movement after release must not change the ratio.
	c.Drag(900)
	if got := c.SplitRatio(); got != DefaultSplitRatio {
		t.Fatalf("ratio moved after drag end: %v", got)
	}
}
