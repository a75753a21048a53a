// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CreationRequestsColumns holds the columns for the "creation_requests" table.
	CreationRequestsColumns = []*schema.Column{
		{Name: "request_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "repo_url", Type: field.TypeString},
		{Name: "branch", Type: field.TypeString, Default: "main"},
		{Name: "status", Type: field.TypeString, Default: "PENDING"},
		{Name: "file_count", Type: field.TypeInt, Default: 0},
		{Name: "project_id", Type: field.TypeString, Default: ""},
		{Name: "error_note", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// CreationRequestsTable holds the schema information for the "creation_requests" table.
	CreationRequestsTable = &schema.Table{
		Name:       "creation_requests",
		Columns:    CreationRequestsColumns,
		PrimaryKey: []*schema.Column{CreationRequestsColumns[0]},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Default: "Project"},
		{Name: "repo_url", Type: field.TypeString},
		{Name: "branch", Type: field.TypeString, Default: "main"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// ProjectMembershipsColumns holds the columns for the "project_memberships" table.
	ProjectMembershipsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeString, Default: "owner"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
	}
	// ProjectMembershipsTable holds the schema information for the "project_memberships" table.
	ProjectMembershipsTable = &schema.Table{
		Name:       "project_memberships",
		Columns:    ProjectMembershipsColumns,
		PrimaryKey: []*schema.Column{ProjectMembershipsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "project_memberships_projects_memberships",
				Columns:    []*schema.Column{ProjectMembershipsColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "project_memberships_users_memberships",
				Columns:    []*schema.Column{ProjectMembershipsColumns[4]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "projectmembership_user_id_project_id",
				Unique:  true,
				Columns: []*schema.Column{ProjectMembershipsColumns[4], ProjectMembershipsColumns[3]},
			},
		},
	}
	// CommitsColumns holds the columns for the "commits" table.
	CommitsColumns = []*schema.Column{
		{Name: "commit_id", Type: field.TypeString, Unique: true},
		{Name: "hash", Type: field.TypeString},
		{Name: "author", Type: field.TypeString, Default: ""},
		{Name: "committed_at", Type: field.TypeTime},
		{Name: "summary", Type: field.TypeString, Default: ""},
		{Name: "modified_files", Type: field.TypeJSON, Nullable: true},
		{Name: "needs_reindex", Type: field.TypeBool, Default: true},
		{Name: "project_id", Type: field.TypeString},
	}
	// CommitsTable holds the schema information for the "commits" table.
	CommitsTable = &schema.Table{
		Name:       "commits",
		Columns:    CommitsColumns,
		PrimaryKey: []*schema.Column{CommitsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "commits_projects_commits",
				Columns:    []*schema.Column{CommitsColumns[7]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "repocommit_project_id_hash",
				Unique:  true,
				Columns: []*schema.Column{CommitsColumns[7], CommitsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Default: ""},
		{Name: "credit_balance", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CreationRequestsTable,
		ProjectsTable,
		ProjectMembershipsTable,
		CommitsTable,
		UsersTable,
	}
)

func init() {
	ProjectMembershipsTable.ForeignKeys[0].RefTable = ProjectsTable
	ProjectMembershipsTable.ForeignKeys[1].RefTable = UsersTable
	CommitsTable.ForeignKeys[0].RefTable = ProjectsTable
	CommitsTable.Annotation = &entsql.Annotation{
		Table: "commits",
	}
}
