package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisible_NilViewerSeesNothing(t *testing.T) {
	all := []Record{
		{ID: 1, Date: "2025-01-01", OwnerID: ""},
		{ID: 2, Date: "2025-01-02", OwnerID: "alice"},
		{ID: 3, Date: "2025-01-03", OwnerID: "bob", SharedWith: []string{AllFriends}},
	}

	assert.Nil(t, Visible(nil, all))
}

func TestVisible_OwnerSeesOwnRecords(t *testing.T) {
	all := []Record{
		{ID: 1, OwnerID: "alice"},
		{ID: 2, OwnerID: "bob"},
	}

	visible := Visible(&Viewer{ID: "alice"}, all)

	assert.Len(t, visible, 1)
	assert.Equal(t, "alice", visible[0].OwnerID)
}

func TestVisible_ExplicitShare(t *testing.T) {
	all := []Record{
		{ID: 1, OwnerID: "bob", SharedWith: []string{"alice"}},
		{ID: 2, OwnerID: "bob", SharedWith: []string{"carol"}},
	}

	visible := Visible(&Viewer{ID: "alice"}, all)

	assert.Len(t, visible, 1)
	assert.Equal(t, int64(1), visible[0].ID)
}

// Sharing with all friends is gated on the viewer's own friend list, not
// the owner's: the viewer must have friended the owner to see the entry.
func TestVisible_AllFriendsRequiresViewerEdge(t *testing.T) {
	all := []Record{
		{ID: 1, OwnerID: "bob", SharedWith: []string{AllFriends}},
	}

	// Alice has not friended bob, so bob's share is invisible to her,
	// even if bob friended alice.
	assert.Empty(t, Visible(&Viewer{ID: "alice"}, all))

	// Once alice friends bob the entry appears.
	visible := Visible(&Viewer{ID: "alice", Friends: []string{"bob"}}, all)
	assert.Len(t, visible, 1)
}

func TestVisible_AsymmetricFriendship(t *testing.T) {
	all := []Record{
		{ID: 1, OwnerID: "alice", SharedWith: []string{AllFriends}},
		{ID: 2, OwnerID: "bob", SharedWith: []string{AllFriends}},
	}

	// Alice friended bob; bob never friended alice back.
	alice := &Viewer{ID: "alice", Friends: []string{"bob"}}
	bob := &Viewer{ID: "bob"}

	aliceSees := Visible(alice, all)
	assert.Len(t, aliceSees, 2, "alice sees her own entry and bob's broadcast")

	bobSees := Visible(bob, all)
	assert.Len(t, bobSees, 1, "bob sees only his own entry")
	assert.Equal(t, "bob", bobSees[0].OwnerID)
}

func TestVisible_LegacyVisibleToAnyViewer(t *testing.T) {
	all := []Record{
		{ID: 1, OwnerID: ""},
	}

	assert.Len(t, Visible(&Viewer{ID: "alice"}, all), 1)
	assert.Len(t, Visible(&Viewer{ID: "bob"}, all), 1)
}

func TestVisible_PreservesOrder(t *testing.T) {
	all := []Record{
		{ID: 3, OwnerID: "alice"},
		{ID: 1, OwnerID: "alice"},
		{ID: 2, OwnerID: "alice"},
	}

	visible := Visible(&Viewer{ID: "alice"}, all)

	assert.Equal(t, []int64{3, 1, 2}, []int64{visible[0].ID, visible[1].ID, visible[2].ID})
}

func TestSharedWithAll(t *testing.T) {
	rec := Record{SharedWith: []string{"alice", AllFriends}}
	assert.True(t, rec.SharedWithAll())

	rec = Record{SharedWith: []string{"alice"}}
	assert.False(t, rec.SharedWithAll())

	rec = Record{}
	assert.False(t, rec.SharedWithAll())
}
