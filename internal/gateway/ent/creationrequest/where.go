// Code generated by ent, DO NOT EDIT.

package creationrequest

import (
	"repolens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldName, v))
}

// RepoURL applies equality check predicate on the "repo_url" field. It's identical to RepoURLEQ.
func RepoURL(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldRepoURL, v))
}

// Branch applies equality check predicate on the "branch" field. It's identical to BranchEQ.
func Branch(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldBranch, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldStatus, v))
}

// FileCount applies equality check predicate on the "file_count" field. It's identical to FileCountEQ.
func FileCount(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldFileCount, v))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldProjectID, v))
}

// ErrorNote applies equality check predicate on the "error_note" field. It's identical to ErrorNoteEQ.
func ErrorNote(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldErrorNote, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldName, v))
}

// RepoURLEQ applies the EQ predicate on the "repo_url" field.
func RepoURLEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldRepoURL, v))
}

// RepoURLNEQ applies the NEQ predicate on the "repo_url" field.
func RepoURLNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldRepoURL, v))
}

// RepoURLIn applies the In predicate on the "repo_url" field.
func RepoURLIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldRepoURL, vs...))
}

// RepoURLNotIn applies the NotIn predicate on the "repo_url" field.
func RepoURLNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldRepoURL, vs...))
}

// RepoURLGT applies the GT predicate on the "repo_url" field.
func RepoURLGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldRepoURL, v))
}

// RepoURLGTE applies the GTE predicate on the "repo_url" field.
func RepoURLGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldRepoURL, v))
}

// RepoURLLT applies the LT predicate on the "repo_url" field.
func RepoURLLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldRepoURL, v))
}

// RepoURLLTE applies the LTE predicate on the "repo_url" field.
func RepoURLLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldRepoURL, v))
}

// RepoURLContains applies the Contains predicate on the "repo_url" field.
func RepoURLContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldRepoURL, v))
}

// RepoURLHasPrefix applies the HasPrefix predicate on the "repo_url" field.
func RepoURLHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldRepoURL, v))
}

// RepoURLHasSuffix applies the HasSuffix predicate on the "repo_url" field.
func RepoURLHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldRepoURL, v))
}

// RepoURLEqualFold applies the EqualFold predicate on the "repo_url" field.
func RepoURLEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldRepoURL, v))
}

// RepoURLContainsFold applies the ContainsFold predicate on the "repo_url" field.
func RepoURLContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldRepoURL, v))
}

// BranchEQ applies the EQ predicate on the "branch" field.
func BranchEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldBranch, v))
}

// BranchNEQ applies the NEQ predicate on the "branch" field.
func BranchNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldBranch, v))
}

// BranchIn applies the In predicate on the "branch" field.
func BranchIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldBranch, vs...))
}

// BranchNotIn applies the NotIn predicate on the "branch" field.
func BranchNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldBranch, vs...))
}

// BranchGT applies the GT predicate on the "branch" field.
func BranchGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldBranch, v))
}

// BranchGTE applies the GTE predicate on the "branch" field.
func BranchGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldBranch, v))
}

// BranchLT applies the LT predicate on the "branch" field.
func BranchLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldBranch, v))
}

// BranchLTE applies the LTE predicate on the "branch" field.
func BranchLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldBranch, v))
}

// BranchContains applies the Contains predicate on the "branch" field.
func BranchContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldBranch, v))
}

// BranchHasPrefix applies the HasPrefix predicate on the "branch" field.
func BranchHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldBranch, v))
}

// BranchHasSuffix applies the HasSuffix predicate on the "branch" field.
func BranchHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldBranch, v))
}

// BranchEqualFold applies the EqualFold predicate on the "branch" field.
func BranchEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldBranch, v))
}

// BranchContainsFold applies the ContainsFold predicate on the "branch" field.
func BranchContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldBranch, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldStatus, v))
}

// FileCountEQ applies the EQ predicate on the "file_count" field.
func FileCountEQ(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldFileCount, v))
}

// FileCountNEQ applies the NEQ predicate on the "file_count" field.
func FileCountNEQ(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldFileCount, v))
}

// FileCountIn applies the In predicate on the "file_count" field.
func FileCountIn(vs ...int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldFileCount, vs...))
}

// FileCountNotIn applies the NotIn predicate on the "file_count" field.
func FileCountNotIn(vs ...int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldFileCount, vs...))
}

// FileCountGT applies the GT predicate on the "file_count" field.
func FileCountGT(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldFileCount, v))
}

// FileCountGTE applies the GTE predicate on the "file_count" field.
func FileCountGTE(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldFileCount, v))
}

// FileCountLT applies the LT predicate on the "file_count" field.
func FileCountLT(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldFileCount, v))
}

// FileCountLTE applies the LTE predicate on the "file_count" field.
func FileCountLTE(v int) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldFileCount, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldProjectID, v))
}

// ErrorNoteEQ applies the EQ predicate on the "error_note" field.
func ErrorNoteEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldErrorNote, v))
}

// ErrorNoteNEQ applies the NEQ predicate on the "error_note" field.
func ErrorNoteNEQ(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldErrorNote, v))
}

// ErrorNoteIn applies the In predicate on the "error_note" field.
func ErrorNoteIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldErrorNote, vs...))
}

// ErrorNoteNotIn applies the NotIn predicate on the "error_note" field.
func ErrorNoteNotIn(vs ...string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldErrorNote, vs...))
}

// ErrorNoteGT applies the GT predicate on the "error_note" field.
func ErrorNoteGT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldErrorNote, v))
}

// ErrorNoteGTE applies the GTE predicate on the "error_note" field.
func ErrorNoteGTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldErrorNote, v))
}

// ErrorNoteLT applies the LT predicate on the "error_note" field.
func ErrorNoteLT(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldErrorNote, v))
}

// ErrorNoteLTE applies the LTE predicate on the "error_note" field.
func ErrorNoteLTE(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldErrorNote, v))
}

// ErrorNoteContains applies the Contains predicate on the "error_note" field.
func ErrorNoteContains(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContains(FieldErrorNote, v))
}

// ErrorNoteHasPrefix applies the HasPrefix predicate on the "error_note" field.
func ErrorNoteHasPrefix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasPrefix(FieldErrorNote, v))
}

// ErrorNoteHasSuffix applies the HasSuffix predicate on the "error_note" field.
func ErrorNoteHasSuffix(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldHasSuffix(FieldErrorNote, v))
}

// ErrorNoteEqualFold applies the EqualFold predicate on the "error_note" field.
func ErrorNoteEqualFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEqualFold(FieldErrorNote, v))
}

// ErrorNoteContainsFold applies the ContainsFold predicate on the "error_note" field.
func ErrorNoteContainsFold(v string) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldContainsFold(FieldErrorNote, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CreationRequest {
	return predicate.CreationRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CreationRequest) predicate.CreationRequest {
	return predicate.CreationRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CreationRequest) predicate.CreationRequest {
	return predicate.CreationRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CreationRequest) predicate.CreationRequest {
	return predicate.CreationRequest(sql.NotPredicates(p))
}
