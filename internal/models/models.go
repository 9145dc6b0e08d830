package models

// Project is a Bitbucket Cloud workspace project.
type Project struct {
	Key         string `json:"key,omitempty" yaml:"key,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	UUID        string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	IsPrivate   *bool  `json:"is_private,omitempty" yaml:"isPrivate,omitempty"`
}

// ProjectRef references a project by key inside a repository payload.
type ProjectRef struct {
	Key string `json:"key" yaml:"key"`
}

// Repository is a Bitbucket Cloud repository.
type Repository struct {
	SCM        string      `json:"scm,omitempty" yaml:"scm,omitempty"`
	Slug       string      `json:"slug,omitempty" yaml:"slug,omitempty"`
	Name       string      `json:"name,omitempty" yaml:"name,omitempty"`
	UUID       string      `json:"uuid,omitempty" yaml:"uuid,omitempty"`
	IsPrivate  bool        `json:"is_private" yaml:"isPrivate"`
	Project    *ProjectRef `json:"project,omitempty" yaml:"project,omitempty"`
	MainBranch *Branch     `json:"mainbranch,omitempty" yaml:"mainBranch,omitempty"`
}

// Branch is a named repository branch.
type Branch struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Account is a Bitbucket user reference.
type Account struct {
	Type        string `json:"type,omitempty" yaml:"type,omitempty"`
	Username    string `json:"username,omitempty" yaml:"username,omitempty"`
	DisplayName string `json:"display_name,omitempty" yaml:"displayName,omitempty"`
	UUID        string `json:"uuid,omitempty" yaml:"uuid,omitempty"`
}

// UserPermission is a user's permission grant on a repository.
type UserPermission struct {
	Permission string   `json:"permission" yaml:"permission"`
	User       *Account `json:"user,omitempty" yaml:"user,omitempty"`
}

// BranchRestriction is a branch restriction rule. Users listed on a push-kind
// rule are exempt from the restriction.
type BranchRestriction struct {
	ID              int       `json:"id,omitempty" yaml:"id,omitempty"`
	Kind            string    `json:"kind" yaml:"kind"`
	BranchMatchKind string    `json:"branch_match_kind" yaml:"branchMatchKind"`
	Pattern         string    `json:"pattern" yaml:"pattern"`
	Users           []Account `json:"users,omitempty" yaml:"users,omitempty"`
}

// BranchRestrictionPage is the paginated envelope returned for restriction
// listings. Only the first page is consumed.
type BranchRestrictionPage struct {
	Size   int                 `json:"size,omitempty" yaml:"size,omitempty"`
	Values []BranchRestriction `json:"values,omitempty" yaml:"values,omitempty"`
	Next   string              `json:"next,omitempty" yaml:"next,omitempty"`
}

// ProjectYaml wraps projects parsed from a YAML input file.
type ProjectYaml struct {
	Projects []Project `json:"projects,omitempty" yaml:"projects,omitempty"`
}
