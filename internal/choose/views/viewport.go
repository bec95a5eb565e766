package views

// ScrollPadding is the number of context rows kept around the highlighted row
const ScrollPadding = 1

// Viewport tracks which slice of the list is visible. The offset is kept
// between frames so the list only scrolls when the highlight would leave
// the padded window.
type Viewport struct {
	Offset int
}

// Fit adjusts the offset so the highlighted row is visible with padding
// rows around it where space allows. A negative highlighted index only
// clamps the offset.
func (v *Viewport) Fit(highlighted, total, height int) {
	if height <= 0 || total <= height {
		v.Offset = 0
		return
	}

	padding := ScrollPadding
	if padding*2 >= height {
		padding = (height - 1) / 2
	}

	if highlighted >= 0 {
		if highlighted-padding < v.Offset {
			v.Offset = highlighted - padding
		}
		if highlighted+padding >= v.Offset+height {
			v.Offset = highlighted + padding - height + 1
		}
	}

	if v.Offset > total-height {
		v.Offset = total - height
	}
	if v.Offset < 0 {
		v.Offset = 0
	}
}
