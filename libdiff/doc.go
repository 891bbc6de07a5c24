// Package libdiff compares documents.
//
// [Diff] compares the canonical text of two documents line by line, so
// differences in layout, comments and float spelling in the sources do not
// show up. [DiffQuestions] aligns questions by id and reports which were
// added, removed or changed.
package libdiff
