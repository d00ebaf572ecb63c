package models

// News is a content item with its per-item allow-lists. A caller may read
// the item iff their role is in AllowedRoles or their id is in
// AllowedUserIDs. Empty (or NULL) lists admit nobody.
type News struct {
	ID             int64
	Title          string
	Content        string
	AllowedRoles   []string
	AllowedUserIDs []int64
}

// VisibleTo reports whether the item's allow-lists admit the given caller.
func (n *News) VisibleTo(userID int64, role string) bool {
	for _, r := range n.AllowedRoles {
		if r == role {
			return true
		}
	}
	for _, id := range n.AllowedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// NewsTitle is the list-view projection of a news item.
type NewsTitle struct {
	ID    int64
	Title string
}
