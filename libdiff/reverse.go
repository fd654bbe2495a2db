package libdiff

// Reverse returns the changes undoing cs, so that patching the new
// list with them gives back the old one.
func Reverse(cs []Change) []Change {
	if cs == nil {
		return nil
	}
	res := make([]Change, len(cs))
	for i, c := range cs {
		res[i] = Change{
			Op:   c.Op.reverse(),
			From: c.To,
			To:   c.From,
			Old:  c.New,
			New:  c.Old,
			Text: reverseText(c.Text),
		}
	}
	return res
}
