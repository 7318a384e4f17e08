package types

// User represents a user of the system.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	// ProjectIDs are the projects this user may read and write.
	ProjectIDs []string `json:"projectIDs"`
	Admin      bool     `json:"-"`
}

// MayAccessProject returns whether the user can read and write the
// project. Admins can access every project.
func (u User) MayAccessProject(projectID string) bool {
	if u.Admin {
		return true
	}
	for _, id := range u.ProjectIDs {
		if id == projectID {
			return true
		}
	}
	return false
}
