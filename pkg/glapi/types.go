package glapi

import (
	"net/url"
	"strconv"
)

// Pagination selects a page of a list endpoint. A nil Pagination on a list
// option means the server's own default page size is used.
type Pagination struct {
	Page    int `json:"page"     yaml:"page"`
	PerPage int `json:"per_page" yaml:"per_page"`
}

// Namespace is the group or user a project lives under.
type Namespace struct {
	ID   int    `json:"id"   yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Project represents a GitLab project.
//
// ID is the server-internal, globally unique identifier and the only value
// that may be used as a path parameter.
type Project struct {
	ID                int       `json:"id"                  yaml:"id"`
	Name              string    `json:"name"                yaml:"name"`
	Path              string    `json:"path"                yaml:"path"`
	PathWithNamespace string    `json:"path_with_namespace" yaml:"path_with_namespace"`
	Namespace         Namespace `json:"namespace"           yaml:"namespace"`
	Description       string    `json:"description"         yaml:"description"`
	DefaultBranch     string    `json:"default_branch"      yaml:"default_branch"`
	Archived          bool      `json:"archived"            yaml:"archived"`
	Visibility        string    `json:"visibility"          yaml:"visibility"`
	SSHURLToRepo      string    `json:"ssh_url_to_repo"     yaml:"ssh_url_to_repo"`
	HTTPURLToRepo     string    `json:"http_url_to_repo"    yaml:"http_url_to_repo"`
	WebURL            string    `json:"web_url"             yaml:"web_url"`
	TagList           []string  `json:"tag_list"            yaml:"tag_list"`
	CreatedAt         string    `json:"created_at"          yaml:"created_at"`
	LastActivityAt    string    `json:"last_activity_at"    yaml:"last_activity_at"`
}

// Group represents a GitLab group.
type Group struct {
	ID          int    `json:"id"          yaml:"id"`
	Name        string `json:"name"        yaml:"name"`
	Path        string `json:"path"        yaml:"path"`
	FullPath    string `json:"full_path"   yaml:"full_path"`
	Description string `json:"description" yaml:"description"`
	WebURL      string `json:"web_url"     yaml:"web_url"`
}

// User is the author/assignee stub embedded in issues and merge requests.
type User struct {
	ID       int    `json:"id"       yaml:"id"`
	Username string `json:"username" yaml:"username"`
	Name     string `json:"name"     yaml:"name"`
	State    string `json:"state"    yaml:"state"`
	WebURL   string `json:"web_url"  yaml:"web_url"`
}

// Milestone is the milestone stub embedded in issues and merge requests.
type Milestone struct {
	ID          int    `json:"id"          yaml:"id"`
	IID         int    `json:"iid"         yaml:"iid"`
	ProjectID   int    `json:"project_id"  yaml:"project_id"`
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	State       string `json:"state"       yaml:"state"`
	DueDate     string `json:"due_date"    yaml:"due_date"`
}

// Issue represents a GitLab issue.
//
// IID is the project-scoped display number; it is unique only within its
// parent project and must never be used as a path parameter.
type Issue struct {
	ID          int        `json:"id"          yaml:"id"`
	IID         int        `json:"iid"         yaml:"iid"`
	ProjectID   int        `json:"project_id"  yaml:"project_id"`
	Title       string     `json:"title"       yaml:"title"`
	Description string     `json:"description" yaml:"description"`
	State       string     `json:"state"       yaml:"state"`
	Labels      []string   `json:"labels"      yaml:"labels"`
	Author      User       `json:"author"      yaml:"author"`
	Assignee    *User      `json:"assignee"    yaml:"assignee"`
	Milestone   *Milestone `json:"milestone"   yaml:"milestone"`
	CreatedAt   string     `json:"created_at"  yaml:"created_at"`
	UpdatedAt   string     `json:"updated_at"  yaml:"updated_at"`
	WebURL      string     `json:"web_url"     yaml:"web_url"`
}

// MergeRequest represents a GitLab merge request. Like Issue, IID is
// project-scoped and ID is the global identifier.
type MergeRequest struct {
	ID              int        `json:"id"                yaml:"id"`
	IID             int        `json:"iid"               yaml:"iid"`
	ProjectID       int        `json:"project_id"        yaml:"project_id"`
	Title           string     `json:"title"             yaml:"title"`
	Description     string     `json:"description"       yaml:"description"`
	State           string     `json:"state"             yaml:"state"`
	TargetBranch    string     `json:"target_branch"     yaml:"target_branch"`
	SourceBranch    string     `json:"source_branch"     yaml:"source_branch"`
	Upvotes         int        `json:"upvotes"           yaml:"upvotes"`
	Downvotes       int        `json:"downvotes"         yaml:"downvotes"`
	Author          User       `json:"author"            yaml:"author"`
	Assignee        *User      `json:"assignee"          yaml:"assignee"`
	SourceProjectID int        `json:"source_project_id" yaml:"source_project_id"`
	TargetProjectID int        `json:"target_project_id" yaml:"target_project_id"`
	Labels          []string   `json:"labels"            yaml:"labels"`
	WorkInProgress  bool       `json:"work_in_progress"  yaml:"work_in_progress"`
	Milestone       *Milestone `json:"milestone"         yaml:"milestone"`
	MergeStatus     string     `json:"merge_status"      yaml:"merge_status"`
	SHA             string     `json:"sha"               yaml:"sha"`
	MergeCommitSHA  string     `json:"merge_commit_sha"  yaml:"merge_commit_sha"`
	CreatedAt       string     `json:"created_at"        yaml:"created_at"`
	UpdatedAt       string     `json:"updated_at"        yaml:"updated_at"`
	WebURL          string     `json:"web_url"           yaml:"web_url"`
}

// Version is the response of the version probe endpoint.
type Version struct {
	Version  string `json:"version"  yaml:"version"`
	Revision string `json:"revision" yaml:"revision"`
}

// ProjectRef addresses a single project either by its server-internal id or
// by its "namespace/name" path. The path form is percent-encoded (the "/"
// becomes "%2F") when embedded in a URL path segment.
type ProjectRef struct {
	id   int
	path string
}

// ProjectID returns a reference by server-internal id.
func ProjectID(id int) ProjectRef {
	return ProjectRef{id: id}
}

// ProjectPath returns a reference by "namespace/name" path.
func ProjectPath(path string) ProjectRef {
	return ProjectRef{path: path}
}

// PathSegment renders the reference as a single URL path segment.
func (r ProjectRef) PathSegment() string {
	if r.path != "" {
		return url.PathEscape(r.path)
	}

	return strconv.Itoa(r.id)
}

// String renders the reference for log and error messages, unescaped.
func (r ProjectRef) String() string {
	if r.path != "" {
		return r.path
	}

	return strconv.Itoa(r.id)
}

// Bool returns a pointer to b, for optional boolean filter fields.
func Bool(b bool) *bool {
	return &b
}
