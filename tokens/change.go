package tokens

// ChangeKind identifies what a Change did.
type ChangeKind uint8

const (
	ChangeInsert ChangeKind = iota
	ChangeRemove
	ChangeMove
	ChangeReset
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInsert:
		return "insert"
	case ChangeRemove:
		return "remove"
	case ChangeMove:
		return "move"
	case ChangeReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change describes one effective mutation of a Field.
//
// Token and Index are set for inserts and removes. Index is -1 for moves and
// resets.
type Change struct {
	Kind           ChangeKind
	Token          Token
	Index          int
	VersionBefore  uint64
	VersionAfter   uint64
	PositionBefore Position
	PositionAfter  Position
}

type changeBuilder struct {
	kind           ChangeKind
	token          Token
	index          int
	versionBefore  uint64
	positionBefore Position
}

func (f *Field) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:           kind,
		index:          -1,
		versionBefore:  f.version,
		positionBefore: f.pos,
	}
}

func (f *Field) commitChange(cb changeBuilder) {
	f.version++
	f.lastChange = Change{
		Kind:           cb.kind,
		Token:          cb.token,
		Index:          cb.index,
		VersionBefore:  cb.versionBefore,
		VersionAfter:   f.version,
		PositionBefore: cb.positionBefore,
		PositionAfter:  f.pos,
	}
	f.hasLastChange = true
	if f.onChange != nil {
		f.onChange(f.lastChange)
	}
}

// LastChange returns the most recent effective change.
func (f *Field) LastChange() (Change, bool) {
	return f.lastChange, f.hasLastChange
}

func (f *Field) Version() uint64 { return f.version }
