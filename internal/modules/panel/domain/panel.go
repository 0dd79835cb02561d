package domain

// Split ratio bounds, as percent of the container given to the
// transcript pane. The citation panel gets the remainder.
const (
	MinSplitRatio     = 30.0
	MaxSplitRatio     = 70.0
	DefaultSplitRatio = 50.0
)

// Layout carries the widths the ratio math depends on. The sidebar is
// outside the split container, so its width is subtracted before
// converting pointer movement to percent.
type Layout struct {
	SidebarWidth          int
	CollapsedSidebarWidth int
}

// Controller is the citation panel's state machine. It is pure state:
// the view renders from it, input events drive it. Without a selected
// source the panel is closed and drag events are inert.
type Controller struct {
	layout Layout

	viewportWidth    int
	sidebarCollapsed bool

	selectedID string
	open       bool
	splitRatio float64

	dragging   bool
	dragStartX int
	dragStart  float64
}

func NewController(layout Layout) *Controller {
	return &Controller{
		layout:     layout,
		splitRatio: DefaultSplitRatio,
	}
}

func (c *Controller) SetViewportWidth(w int) { c.viewportWidth = w }

func (c *Controller) SetSidebarCollapsed(collapsed bool) { c.sidebarCollapsed = collapsed }

func (c *Controller) SidebarCollapsed() bool { return c.sidebarCollapsed }

// Select opens the panel on the given source. The split ratio is
// whatever it last was; opening never resets it.
func (c *Controller) Select(sourceID string) {
	c.selectedID = sourceID
	c.open = true
}

// Close returns the layout to a single pane. The ratio is kept so a
// later Select restores the user's adjustment.
func (c *Controller) Close() {
	c.selectedID = ""
	c.open = false
	c.dragging = false
}

func (c *Controller) Open() bool { return c.open }

func (c *Controller) SelectedID() string { return c.selectedID }

func (c *Controller) SplitRatio() float64 { return c.splitRatio }

func (c *Controller) Dragging() bool { return c.dragging }

// BeginDrag captures the anchor position and ratio. A drag on a closed
// panel does nothing.
func (c *Controller) BeginDrag(x int) {
	if !c.open {
		return
	}
	c.dragging = true
	c.dragStartX = x
	c.dragStart = c.splitRatio
}

// Drag converts pointer movement to a ratio change, clamped to the
// allowed range.
func (c *Controller) Drag(x int) {
	if !c.dragging {
		return
	}
	width := c.containerWidth()
	if width <= 0 {
		return
	}
	delta := float64(x-c.dragStartX) / float64(width) * 100
	c.splitRatio = clampRatio(c.dragStart + delta)
}

func (c *Controller) EndDrag() { c.dragging = false }

// ContainerWidth is the horizontal space the split panes share: the
// viewport minus the sidebar.
func (c *Controller) containerWidth() int {
	sidebar := c.layout.SidebarWidth
	if c.sidebarCollapsed {
		sidebar = c.layout.CollapsedSidebarWidth
	}
	return c.viewportWidth - sidebar
}

// PaneWidths splits the container between transcript and panel. With
// the panel closed the transcript takes everything.
func (c *Controller) PaneWidths() (transcript, panel int) {
	width := c.containerWidth()
	if width < 0 {
		width = 0
	}
	if !c.open {
		return width, 0
	}
	transcript = int(float64(width) * c.splitRatio / 100)
	return transcript, width - transcript
}

func clampRatio(v float64) float64 {
	if v < MinSplitRatio {
		return MinSplitRatio
	}
	if v > MaxSplitRatio {
		return MaxSplitRatio
	}
	return v
}
