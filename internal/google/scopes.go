package google

// OAuth scopes requested during login. Write access covers everything the
// CLI does (upload, trash, mkdir); readonly is offered for users who only
// ever list and download.
const (
	DriveScope         = "https://www.googleapis.com/auth/drive"
	DriveReadonlyScope = "https://www.googleapis.com/auth/drive.readonly"
)

// ScopesFor returns the scopes to request for the given access level.
func ScopesFor(write bool) []string {
	if write {
		return []string{DriveScope}
	}
	return []string{DriveReadonlyScope}
}
