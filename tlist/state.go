package tlist

// MsgState is context passed through every encode and decode call. The
// list machinery hands it on without looking at it; user Marshalers may
// use it for protocol versioning or session data.
//
// A nil *MsgState is valid and carries nothing.
type MsgState struct {
	Version int

	values map[any]any
}

func NewMsgState(version int) *MsgState {
	return &MsgState{Version: version}
}

// WithValue associates val with key and returns s. On a nil s it
// returns a new state holding only key.
func (s *MsgState) WithValue(key, val any) *MsgState {
	if s == nil {
		s = &MsgState{}
	}
	if s.values == nil {
		s.values = map[any]any{}
	}
	s.values[key] = val
	return s
}

// Value returns the value associated with key, or nil.
func (s *MsgState) Value(key any) any {
	if s == nil {
		return nil
	}
	return s.values[key]
}
