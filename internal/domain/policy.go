package domain

// Identity is the authenticated {id, role} pair derived from a verified
// token. It lives for a single request and is never persisted.
type Identity struct {
	UserID int64
	Role   Role
}

// CanView reports whether the requester may read the post: admins see
// everything, published posts are visible to all, drafts only to their
// author.
func CanView(ident Identity, p *Post) bool {
	if ident.Role == RoleAdmin {
		return true
	}
	return p.Status == StatusPublished || p.AuthorID == ident.UserID
}

// CanModify reports whether the requester may update or delete the post.
// Stricter than CanView: a published post someone else wrote is readable
// but not editable.
func CanModify(ident Identity, p *Post) bool {
	return ident.Role == RoleAdmin || p.AuthorID == ident.UserID
}

// ListScope returns the filter to apply when listing posts for the
// requester. The scope is evaluated at the query boundary so rows the
// requester may not see are never fetched.
func ListScope(ident Identity) PostScope {
	if ident.Role == RoleAdmin {
		return PostScope{}
	}
	return PostScope{Restricted: true, OwnerID: ident.UserID}
}
