package buffer

// Reconcile returns the selection to apply after an Indent made from sel.
//
// A caret moves forward by one indent unit, a collapsed selection becomes a
// caret where the deleted text began, and a multi-line selection grows by one
// unit at the start and by one unit per spanned line at the end. The result
// is clamped into the new text.
func (r IndentResult) Reconcile(sel Selection) Selection {
	var next Selection
	switch r.Kind {
	case IndentInsert:
		next = Caret(sel.Start + r.Width)
	case IndentCollapse:
		next = Caret(sel.Start)
	case IndentLines:
		next = Selection{
			Start: sel.Start + r.Width,
			End:   sel.End + r.NumLines*r.Width,
		}
	default:
		next = sel
	}
	return ClampSelection(next, RuneLen(r.Text))
}

// Reconcile returns the selection to apply after an Outdent made from sel.
//
// It assumes every spanned line lost a full indent unit. Lines that had fewer
// leading spaces make the estimate overshoot; the result is clamped into the
// new text but may drift from the true position. Use ReconcileExact for a
// selection that follows the removed spaces precisely.
func (r OutdentResult) Reconcile(sel Selection) Selection {
	var next Selection
	switch r.Kind {
	case OutdentLine:
		next = Caret(sel.Start - r.Width)
	case OutdentLines:
		next = Selection{
			Start: sel.Start - r.Width,
			End:   sel.End - r.NumLines*r.Width,
		}
	default:
		next = sel
	}
	return ClampSelection(next, RuneLen(r.Text))
}

// ReconcileExact maps both ends of sel through the spaces Outdent actually
// removed. A selection keeps its extent instead of collapsing to a caret.
func (r OutdentResult) ReconcileExact(sel Selection) Selection {
	first := 0
	if len(r.Stripped) > 0 {
		first = r.Stripped[0]
	}

	start := sel.Start
	switch {
	case start >= r.LineStart+first:
		start -= first
	case start > r.LineStart:
		start = r.LineStart
	}

	return ClampSelection(Selection{Start: start, End: sel.End - r.Removed()}, RuneLen(r.Text))
}
