package draft

type draftSnapshot struct {
	clusters []string
	cursor   int
	sel      selectionState
}

type historyState struct {
	undo []draftSnapshot
	redo []draftSnapshot
}

func (d *Draft) snapshot() draftSnapshot {
	return draftSnapshot{
		clusters: append([]string(nil), d.clusters...),
		cursor:   d.cursor,
		sel:      d.sel,
	}
}

func (d *Draft) restore(s draftSnapshot) {
	d.clusters = s.clusters
	d.cursor = d.clamp(s.cursor)
	d.sel = selectionState{}
	if s.sel.active {
		anchor, end := d.clamp(s.sel.anchor), d.clamp(s.sel.end)
		if anchor != end {
			d.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
}

func (d *Draft) recordUndo(prev draftSnapshot) {
	limit := d.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	d.hist.undo = append(d.hist.undo, prev)
	if len(d.hist.undo) > limit {
		d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
	}
	d.hist.redo = nil
}

func (d *Draft) CanUndo() bool { return len(d.hist.undo) > 0 }

func (d *Draft) CanRedo() bool { return len(d.hist.redo) > 0 }

func (d *Draft) Undo() bool {
	if len(d.hist.undo) == 0 {
		return false
	}

	i := len(d.hist.undo) - 1
	prev := d.hist.undo[i]
	d.hist.undo = d.hist.undo[:i]
	d.hist.redo = append(d.hist.redo, d.snapshot())

	d.restore(prev)
	d.version++
	return true
}

func (d *Draft) Redo() bool {
	if len(d.hist.redo) == 0 {
		return false
	}

	i := len(d.hist.redo) - 1
	next := d.hist.redo[i]
	d.hist.redo = d.hist.redo[:i]

	if limit := d.opt.HistoryLimit; limit > 0 {
		d.hist.undo = append(d.hist.undo, d.snapshot())
		if len(d.hist.undo) > limit {
			d.hist.undo = d.hist.undo[len(d.hist.undo)-limit:]
		}
	}

	d.restore(next)
	d.version++
	return true
}
