package entities

// User is a platform account.
type User struct {
	Login  string `json:"login" yaml:"login"`
	Name   string `json:"name,omitempty" yaml:"name,omitempty"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`
	Active bool   `json:"active" yaml:"active"`
}

// NoticeEducationPrinciples is the only notice the current user may dismiss.
const NoticeEducationPrinciples = "educationPrinciples"

// LoggedInUser is the account the store acts on behalf of.
type LoggedInUser struct {
	Login            string          `json:"login" yaml:"login"`
	Name             string          `json:"name" yaml:"name"`
	IsLoggedIn       bool            `json:"isLoggedIn" yaml:"isLoggedIn"`
	Groups           []string        `json:"groups" yaml:"groups"`
	ScmAccounts      []string        `json:"scmAccounts" yaml:"scmAccounts"`
	DismissedNotices map[string]bool `json:"dismissedNotices" yaml:"dismissedNotices"`
}

// Group is a user group.
type Group struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// UsersResponse is the users search envelope.
type UsersResponse struct {
	Paging *Paging `json:"paging,omitempty"`
	Users  []User  `json:"users"`
}

// GroupsResponse is the groups search envelope.
type GroupsResponse struct {
	Groups []Group `json:"groups"`
}

// UserQuery filters the user directory.
type UserQuery struct {
	Q        string
	Page     int
	PageSize int
}
