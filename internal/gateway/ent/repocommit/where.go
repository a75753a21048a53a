// Code generated by ent, DO NOT EDIT.

package repocommit

import (
	"repolens/internal/gateway/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldProjectID, v))
}

// Hash applies equality check predicate on the "hash" field. It's identical to HashEQ.
func Hash(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldHash, v))
}

// Author applies equality check predicate on the "author" field. It's identical to AuthorEQ.
func Author(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldAuthor, v))
}

// CommittedAt applies equality check predicate on the "committed_at" field. It's identical to CommittedAtEQ.
func CommittedAt(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldCommittedAt, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldSummary, v))
}

// NeedsReindex applies equality check predicate on the "needs_reindex" field. It's identical to NeedsReindexEQ.
func NeedsReindex(v bool) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldNeedsReindex, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContainsFold(FieldProjectID, v))
}

// HashEQ applies the EQ predicate on the "hash" field.
func HashEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldHash, v))
}

// HashNEQ applies the NEQ predicate on the "hash" field.
func HashNEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldHash, v))
}

// HashIn applies the In predicate on the "hash" field.
func HashIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldHash, vs...))
}

// HashNotIn applies the NotIn predicate on the "hash" field.
func HashNotIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldHash, vs...))
}

// HashGT applies the GT predicate on the "hash" field.
func HashGT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldHash, v))
}

// HashGTE applies the GTE predicate on the "hash" field.
func HashGTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldHash, v))
}

// HashLT applies the LT predicate on the "hash" field.
func HashLT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldHash, v))
}

// HashLTE applies the LTE predicate on the "hash" field.
func HashLTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldHash, v))
}

// HashContains applies the Contains predicate on the "hash" field.
func HashContains(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContains(FieldHash, v))
}

// HashHasPrefix applies the HasPrefix predicate on the "hash" field.
func HashHasPrefix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasPrefix(FieldHash, v))
}

// HashHasSuffix applies the HasSuffix predicate on the "hash" field.
func HashHasSuffix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasSuffix(FieldHash, v))
}

// HashEqualFold applies the EqualFold predicate on the "hash" field.
func HashEqualFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEqualFold(FieldHash, v))
}

// HashContainsFold applies the ContainsFold predicate on the "hash" field.
func HashContainsFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContainsFold(FieldHash, v))
}

// AuthorEQ applies the EQ predicate on the "author" field.
func AuthorEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldAuthor, v))
}

// AuthorNEQ applies the NEQ predicate on the "author" field.
func AuthorNEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldAuthor, v))
}

// AuthorIn applies the In predicate on the "author" field.
func AuthorIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldAuthor, vs...))
}

// AuthorNotIn applies the NotIn predicate on the "author" field.
func AuthorNotIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldAuthor, vs...))
}

// AuthorGT applies the GT predicate on the "author" field.
func AuthorGT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldAuthor, v))
}

// AuthorGTE applies the GTE predicate on the "author" field.
func AuthorGTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldAuthor, v))
}

// AuthorLT applies the LT predicate on the "author" field.
func AuthorLT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldAuthor, v))
}

// AuthorLTE applies the LTE predicate on the "author" field.
func AuthorLTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldAuthor, v))
}

// AuthorContains applies the Contains predicate on the "author" field.
func AuthorContains(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContains(FieldAuthor, v))
}

// AuthorHasPrefix applies the HasPrefix predicate on the "author" field.
func AuthorHasPrefix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasPrefix(FieldAuthor, v))
}

// AuthorHasSuffix applies the HasSuffix predicate on the "author" field.
func AuthorHasSuffix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasSuffix(FieldAuthor, v))
}

// AuthorEqualFold applies the EqualFold predicate on the "author" field.
func AuthorEqualFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEqualFold(FieldAuthor, v))
}

// AuthorContainsFold applies the ContainsFold predicate on the "author" field.
func AuthorContainsFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContainsFold(FieldAuthor, v))
}

// CommittedAtEQ applies the EQ predicate on the "committed_at" field.
func CommittedAtEQ(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldCommittedAt, v))
}

// CommittedAtNEQ applies the NEQ predicate on the "committed_at" field.
func CommittedAtNEQ(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldCommittedAt, v))
}

// CommittedAtIn applies the In predicate on the "committed_at" field.
func CommittedAtIn(vs ...time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldCommittedAt, vs...))
}

// CommittedAtNotIn applies the NotIn predicate on the "committed_at" field.
func CommittedAtNotIn(vs ...time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldCommittedAt, vs...))
}

// CommittedAtGT applies the GT predicate on the "committed_at" field.
func CommittedAtGT(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldCommittedAt, v))
}

// CommittedAtGTE applies the GTE predicate on the "committed_at" field.
func CommittedAtGTE(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldCommittedAt, v))
}

// CommittedAtLT applies the LT predicate on the "committed_at" field.
func CommittedAtLT(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldCommittedAt, v))
}

// CommittedAtLTE applies the LTE predicate on the "committed_at" field.
func CommittedAtLTE(v time.Time) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldCommittedAt, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldContainsFold(FieldSummary, v))
}

// ModifiedFilesIsNil applies the IsNil predicate on the "modified_files" field.
func ModifiedFilesIsNil() predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldIsNull(FieldModifiedFiles))
}

// ModifiedFilesNotNil applies the NotNil predicate on the "modified_files" field.
func ModifiedFilesNotNil() predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNotNull(FieldModifiedFiles))
}

// NeedsReindexEQ applies the EQ predicate on the "needs_reindex" field.
func NeedsReindexEQ(v bool) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldEQ(FieldNeedsReindex, v))
}

// NeedsReindexNEQ applies the NEQ predicate on the "needs_reindex" field.
func NeedsReindexNEQ(v bool) predicate.RepoCommit {
	return predicate.RepoCommit(sql.FieldNEQ(FieldNeedsReindex, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.RepoCommit {
	return predicate.RepoCommit(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.RepoCommit {
	return predicate.RepoCommit(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RepoCommit) predicate.RepoCommit {
	return predicate.RepoCommit(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RepoCommit) predicate.RepoCommit {
	return predicate.RepoCommit(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RepoCommit) predicate.RepoCommit {
	return predicate.RepoCommit(sql.NotPredicates(p))
}
