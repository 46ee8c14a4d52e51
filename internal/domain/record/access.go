package record

// Viewer is the minimal identity the visibility filter needs: who is
// looking, and whom they have added as friends.
type Viewer struct {
	ID      string
	Friends []string
}

func (v *Viewer) hasFriended(ownerID string) bool {
	for _, id := range v.Friends {
		if id == ownerID {
			return true
		}
	}
	return false
}

// Visible computes the subset of records the viewer may observe. Rules, in
// order: own records; legacy records without an owner; records explicitly
// shared with the viewer; records shared via AllFriends when the viewer has
// friended the owner. The friend check deliberately reads the viewer's list,
// not the owner's. Friendship is directed, so an AllFriends share is only
// visible to viewers who added the owner themselves.
//
// The input order is preserved and no record is duplicated. A nil viewer
// (nobody logged in) sees nothing.
func Visible(viewer *Viewer, all []Record) []Record {
	if viewer == nil {
		return nil
	}

	visible := make([]Record, 0, len(all))
	for _, r := range all {
		if observes(viewer, &r) {
			visible = append(visible, r)
		}
	}
	return visible
}

func observes(viewer *Viewer, r *Record) bool {
	if r.OwnerID == viewer.ID {
		return true
	}
	if r.OwnerID == "" {
		// Legacy record: visible to any authenticated viewer.
		return true
	}
	for _, id := range r.SharedWith {
		if id == viewer.ID {
			return true
		}
	}
	if r.SharedWithAll() && viewer.hasFriended(r.OwnerID) {
		return true
	}
	return false
}
