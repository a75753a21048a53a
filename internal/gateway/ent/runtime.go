// Code generated by ent, DO NOT EDIT.

package ent

import (
	"repolens/internal/gateway/ent/creationrequest"
	"repolens/internal/gateway/ent/project"
	"repolens/internal/gateway/ent/projectmembership"
	"repolens/internal/gateway/ent/repocommit"
	"repolens/internal/gateway/ent/schema"
	"repolens/internal/gateway/ent/user"
	"time"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	creationrequestFields := schema.CreationRequest{}.Fields()
	_ = creationrequestFields
	// creationrequestDescUserID is the schema descriptor for user_id field.
	creationrequestDescUserID := creationrequestFields[1].Descriptor()
	// creationrequest.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	creationrequest.UserIDValidator = creationrequestDescUserID.Validators[0].(func(string) error)
	// creationrequestDescName is the schema descriptor for name field.
	creationrequestDescName := creationrequestFields[2].Descriptor()
	// creationrequest.DefaultName holds the default value on creation for the name field.
	creationrequest.DefaultName = creationrequestDescName.Default.(string)
	// creationrequestDescRepoURL is the schema descriptor for repo_url field.
	creationrequestDescRepoURL := creationrequestFields[3].Descriptor()
	// creationrequest.RepoURLValidator is a validator for the "repo_url" field. It is called by the builders before save.
	creationrequest.RepoURLValidator = creationrequestDescRepoURL.Validators[0].(func(string) error)
	// creationrequestDescBranch is the schema descriptor for branch field.
	creationrequestDescBranch := creationrequestFields[4].Descriptor()
	// creationrequest.DefaultBranch holds the default value on creation for the branch field.
	creationrequest.DefaultBranch = creationrequestDescBranch.Default.(string)
	// creationrequestDescStatus is the schema descriptor for status field.
	creationrequestDescStatus := creationrequestFields[5].Descriptor()
	// creationrequest.DefaultStatus holds the default value on creation for the status field.
	creationrequest.DefaultStatus = creationrequestDescStatus.Default.(string)
	// creationrequestDescFileCount is the schema descriptor for file_count field.
	creationrequestDescFileCount := creationrequestFields[6].Descriptor()
	// creationrequest.DefaultFileCount holds the default value on creation for the file_count field.
	creationrequest.DefaultFileCount = creationrequestDescFileCount.Default.(int)
	// creationrequestDescProjectID is the schema descriptor for project_id field.
	creationrequestDescProjectID := creationrequestFields[7].Descriptor()
	// creationrequest.DefaultProjectID holds the default value on creation for the project_id field.
	creationrequest.DefaultProjectID = creationrequestDescProjectID.Default.(string)
	// creationrequestDescErrorNote is the schema descriptor for error_note field.
	creationrequestDescErrorNote := creationrequestFields[8].Descriptor()
	// creationrequest.DefaultErrorNote holds the default value on creation for the error_note field.
	creationrequest.DefaultErrorNote = creationrequestDescErrorNote.Default.(string)
	// creationrequestDescCreatedAt is the schema descriptor for created_at field.
	creationrequestDescCreatedAt := creationrequestFields[9].Descriptor()
	// creationrequest.DefaultCreatedAt holds the default value on creation for the created_at field.
	creationrequest.DefaultCreatedAt = creationrequestDescCreatedAt.Default.(func() time.Time)
	// creationrequestDescUpdatedAt is the schema descriptor for updated_at field.
	creationrequestDescUpdatedAt := creationrequestFields[10].Descriptor()
	// creationrequest.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	creationrequest.DefaultUpdatedAt = creationrequestDescUpdatedAt.Default.(func() time.Time)
	// creationrequest.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	creationrequest.UpdateDefaultUpdatedAt = creationrequestDescUpdatedAt.UpdateDefault.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescName is the schema descriptor for name field.
	projectDescName := projectFields[1].Descriptor()
	// project.DefaultName holds the default value on creation for the name field.
	project.DefaultName = projectDescName.Default.(string)
	// projectDescRepoURL is the schema descriptor for repo_url field.
	projectDescRepoURL := projectFields[2].Descriptor()
	// project.RepoURLValidator is a validator for the "repo_url" field. It is called by the builders before save.
	project.RepoURLValidator = projectDescRepoURL.Validators[0].(func(string) error)
	// projectDescBranch is the schema descriptor for branch field.
	projectDescBranch := projectFields[3].Descriptor()
	// project.DefaultBranch holds the default value on creation for the branch field.
	project.DefaultBranch = projectDescBranch.Default.(string)
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	projectmembershipFields := schema.ProjectMembership{}.Fields()
	_ = projectmembershipFields
	// projectmembershipDescUserID is the schema descriptor for user_id field.
	projectmembershipDescUserID := projectmembershipFields[1].Descriptor()
	// projectmembership.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	projectmembership.UserIDValidator = projectmembershipDescUserID.Validators[0].(func(string) error)
	// projectmembershipDescProjectID is the schema descriptor for project_id field.
	projectmembershipDescProjectID := projectmembershipFields[2].Descriptor()
	// projectmembership.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	projectmembership.ProjectIDValidator = projectmembershipDescProjectID.Validators[0].(func(string) error)
	// projectmembershipDescRole is the schema descriptor for role field.
	projectmembershipDescRole := projectmembershipFields[3].Descriptor()
	// projectmembership.DefaultRole holds the default value on creation for the role field.
	projectmembership.DefaultRole = projectmembershipDescRole.Default.(string)
	// projectmembershipDescCreatedAt is the schema descriptor for created_at field.
	projectmembershipDescCreatedAt := projectmembershipFields[4].Descriptor()
	// projectmembership.DefaultCreatedAt holds the default value on creation for the created_at field.
	projectmembership.DefaultCreatedAt = projectmembershipDescCreatedAt.Default.(func() time.Time)
	repocommitFields := schema.RepoCommit{}.Fields()
	_ = repocommitFields
	// repocommitDescProjectID is the schema descriptor for project_id field.
	repocommitDescProjectID := repocommitFields[1].Descriptor()
	// repocommit.ProjectIDValidator is a validator for the "project_id" field. It is called by the builders before save.
	repocommit.ProjectIDValidator = repocommitDescProjectID.Validators[0].(func(string) error)
	// repocommitDescHash is the schema descriptor for hash field.
	repocommitDescHash := repocommitFields[2].Descriptor()
	// repocommit.HashValidator is a validator for the "hash" field. It is called by the builders before save.
	repocommit.HashValidator = repocommitDescHash.Validators[0].(func(string) error)
	// repocommitDescAuthor is the schema descriptor for author field.
	repocommitDescAuthor := repocommitFields[3].Descriptor()
	// repocommit.DefaultAuthor holds the default value on creation for the author field.
	repocommit.DefaultAuthor = repocommitDescAuthor.Default.(string)
	// repocommitDescCommittedAt is the schema descriptor for committed_at field.
	repocommitDescCommittedAt := repocommitFields[4].Descriptor()
	// repocommit.DefaultCommittedAt holds the default value on creation for the committed_at field.
	repocommit.DefaultCommittedAt = repocommitDescCommittedAt.Default.(func() time.Time)
	// repocommitDescSummary is the schema descriptor for summary field.
	repocommitDescSummary := repocommitFields[5].Descriptor()
	// repocommit.DefaultSummary holds the default value on creation for the summary field.
	repocommit.DefaultSummary = repocommitDescSummary.Default.(string)
	// repocommitDescNeedsReindex is the schema descriptor for needs_reindex field.
	repocommitDescNeedsReindex := repocommitFields[7].Descriptor()
	// repocommit.DefaultNeedsReindex holds the default value on creation for the needs_reindex field.
	repocommit.DefaultNeedsReindex = repocommitDescNeedsReindex.Default.(bool)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[1].Descriptor()
	// user.DefaultEmail holds the default value on creation for the email field.
	user.DefaultEmail = userDescEmail.Default.(string)
	// userDescCreditBalance is the schema descriptor for credit_balance field.
	userDescCreditBalance := userFields[2].Descriptor()
	// user.DefaultCreditBalance holds the default value on creation for the credit_balance field.
	user.DefaultCreditBalance = userDescCreditBalance.Default.(int)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
