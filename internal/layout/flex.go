package layout

// Flex lays its children out along a main axis, optionally wrapping them onto
// several lines, growing flexible children into the leftover space of their
// line and aligning them on both axes.
//
// A child declares a flex factor through its Props; AlignSelf overrides
// AlignItems for a single child.
type Flex struct {
	Direction      Direction
	Reverse        bool // Reverse the main-axis order of the children
	Wrap           bool // Allow children to wrap onto multiple lines
	AlignItems     Align
	JustifyContent Justify
}

// PerformLayout runs the three flex passes: greedy placement, flexible
// relayout, and alignment.
func (f *Flex) PerformLayout(clamp BoxClamp, ctx *Ctx) Size {
	children := ctx.Children()
	if f.Reverse {
		children = ctx.ChildrenReversed()
	}
	l := flexLayouter{
		flex:    f,
		maxSize: toFlexSize(clamp.Max, f.Direction),
		minSize: toFlexSize(clamp.Min, f.Direction),
	}
	l.place(ctx, children)
	l.relayout(ctx, children)
	size := l.boxSize()
	l.align(ctx, children, size)
	return size.toSize(f.Direction)
}

// flexSize is a size or point expressed along the main and cross axes.
type flexSize struct {
	main, cross float32
}

func toFlexSize(s Size, dir Direction) flexSize {
	if dir == Column {
		return flexSize{main: s.Height, cross: s.Width}
	}
	return flexSize{main: s.Width, cross: s.Height}
}

func toFlexPoint(p Point, dir Direction) flexSize {
	return toFlexSize(Sz(p.X, p.Y), dir)
}

func (f flexSize) toSize(dir Direction) Size {
	if dir == Column {
		return Sz(f.cross, f.main)
	}
	return Sz(f.main, f.cross)
}

func (f flexSize) toPoint(dir Direction) Point {
	s := f.toSize(dir)
	return Pt(s.Width, s.Height)
}

// clamp restricts f into [lo, hi]; for an inverted range lo wins.
func (f flexSize) clamp(lo, hi flexSize) flexSize {
	return flexSize{
		main:  max(min(f.main, hi.main), lo.main),
		cross: max(min(f.cross, hi.cross), lo.cross),
	}
}

// mainLine accumulates one line of children during a single layout call.
type mainLine struct {
	childCount int
	// crossPos is the cross-axis offset of the line inside the container.
	crossPos float32
	// mainExtent is the main-axis space consumed by the line's children.
	mainExtent float32
	// crossExtent is the cross extent of the line's tallest child.
	crossExtent float32
	// flexSum is the sum of the flex factors of the line's flexible children.
	flexSum float32
	// flexMain is the main-axis space already claimed by flexible children.
	flexMain float32
}

func (l *mainLine) isEmpty() bool {
	return l.childCount == 0
}

func (l *mainLine) crossEnd() float32 {
	return l.crossPos + l.crossExtent
}

type flexLayouter struct {
	flex    *Flex
	maxSize flexSize
	minSize flexSize
	// mainMax is the longest line seen so far.
	mainMax float32
	current mainLine
	lines   []mainLine
}

func (l *flexLayouter) alignOf(ctx *Ctx, child NodeID) Align {
	if a := ctx.Props(child).AlignSelf; a != nil {
		return *a
	}
	return l.flex.AlignItems
}

// place lays each child out loosely and packs it onto the current line,
// opening a new line first when wrapping is on and the child does not fit.
func (l *flexLayouter) place(ctx *Ctx, children []NodeID) {
	dir := l.flex.Direction
	clamp := BoxClamp{Max: l.maxSize.toSize(dir)}
	for _, child := range children {
		size := toFlexSize(ctx.PerformChildLayout(child, clamp), dir)
		if l.flex.Wrap && !l.current.isEmpty() && l.current.mainExtent+size.main > l.maxSize.main {
			l.closeLine()
		}
		ctx.UpdatePosition(child, flexSize{main: l.current.mainExtent, cross: l.current.crossPos}.toPoint(dir))

		line := &l.current
		line.mainExtent += size.main
		line.crossExtent = max(line.crossExtent, size.cross)
		line.childCount++
		if flex, ok := ctx.FlexFactor(child); ok {
			line.flexSum += flex
			line.flexMain += size.main
		}
	}
	l.closeLine()
}

func (l *flexLayouter) closeLine() {
	if l.current.isEmpty() {
		return
	}
	l.mainMax = max(l.mainMax, l.current.mainExtent)
	l.lines = append(l.lines, l.current)
	l.current = mainLine{crossPos: l.current.crossEnd()}
}

// relayout gives each line's flexible children their share of the line's
// leftover space and stretches children on the cross axis.
func (l *flexLayouter) relayout(ctx *Ctx, children []NodeID) {
	next := 0
	for i := range l.lines {
		line := &l.lines[i]
		var offset float32
		for range line.childCount {
			offset = l.relayoutChild(ctx, children[next], line, offset)
			next++
		}
		l.mainMax = max(l.mainMax, line.mainExtent)
	}
}

// relayoutChild re-measures child if its flexible share or a stretch could
// change its size, then shifts it by offset, the growth of its preceding
// siblings. It returns the offset for the next sibling.
//
// Flexible children split what remains of the line left to right, so each
// takes its factor's share of the space the earlier ones left over.
func (l *flexLayouter) relayoutChild(ctx *Ctx, child NodeID, line *mainLine, offset float32) float32 {
	dir := l.flex.Direction
	pre := ctx.MustWidgetBoxRect(child)
	preSize := toFlexSize(pre.Size, dir)

	preferMain := preSize.main
	if flex, ok := ctx.FlexFactor(child); ok && line.flexSum > 0 && isFinite(l.maxSize.main) {
		remain := l.maxSize.main - line.mainExtent + line.flexMain
		preferMain = remain * (flex / line.flexSum)
		line.flexSum -= flex
		line.flexMain -= preSize.main
	}
	preferMain = max(preferMain, preSize.main)

	clampMax := flexSize{main: preferMain, cross: line.crossExtent}
	clampMin := flexSize{main: preferMain}
	if l.alignOf(ctx, child) == AlignStretch {
		clampMin.cross = line.crossExtent
	}

	measured := preSize
	if preferMain > preSize.main || clampMin.cross > preSize.cross {
		measured = toFlexSize(ctx.PerformChildLayout(child, BoxClamp{
			Min: clampMin.toSize(dir),
			Max: clampMax.toSize(dir),
		}), dir)
	}

	diff := measured.main - preSize.main
	line.mainExtent += diff

	pos := toFlexPoint(pre.Origin, dir)
	pos.main += offset
	if newPos := pos.toPoint(dir); newPos != pre.Origin {
		ctx.UpdatePosition(child, newPos)
	}
	return offset + diff
}

// bestSize is the size the lines need: the longest line by the lines' total
// cross extent.
func (l *flexLayouter) bestSize() flexSize {
	var cross float32
	if n := len(l.lines); n > 0 {
		cross = l.lines[n-1].crossEnd()
	}
	return flexSize{main: l.mainMax, cross: cross}
}

func (l *flexLayouter) boxSize() flexSize {
	return l.bestSize().clamp(l.minSize, l.maxSize)
}

// justify returns the start offset and the extra step between children of
// line inside a container of main extent containerMain.
func (l *flexLayouter) justify(line *mainLine, containerMain float32) (offset, step float32) {
	free := containerMain - line.mainExtent
	n := float32(line.childCount)
	switch l.flex.JustifyContent {
	case JustifyCenter:
		return free / 2, 0
	case JustifyEnd:
		return free, 0
	case JustifySpaceBetween:
		if line.childCount < 2 {
			return 0, 0
		}
		return 0, free / (n - 1)
	case JustifySpaceAround:
		step = free / n
		return step / 2, step
	case JustifySpaceEvenly:
		step = free / (n + 1)
		return step, step
	default: // JustifyStart
		return 0, 0
	}
}

// align positions the lines inside the container's final size and each child
// inside its line.
func (l *flexLayouter) align(ctx *Ctx, children []NodeID, size flexSize) {
	dir := l.flex.Direction
	containerCross := l.flex.AlignItems.alignValue(l.bestSize().cross, size.cross)
	next := 0
	for i := range l.lines {
		line := &l.lines[i]
		offset, step := l.justify(line, size.main)
		for range line.childCount {
			child := children[next]
			next++
			rect := ctx.MustWidgetBoxRect(child)
			origin := toFlexPoint(rect.Origin, dir)
			childSize := toFlexSize(rect.Size, dir)

			origin.main += offset
			origin.cross += containerCross + l.alignOf(ctx, child).alignValue(childSize.cross, line.crossExtent)
			ctx.UpdatePosition(child, origin.toPoint(dir))
			offset += step
		}
	}
}
