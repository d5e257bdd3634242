// Package analytics holds the dashboard pipeline over an in-memory tap
// record view: the filter engine and the five aggregators.
//
// Grouping and counting go through gota dataframes. String keys are
// dictionary-encoded to integer codes before grouping, so codes follow
// first appearance in the view and double as the tie-break order.
package analytics
