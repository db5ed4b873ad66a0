// Package menu implements the menu catalog aggregate: the authoritative
// read/write store of categories and items the rest of the system prices
// against.
//
// The catalog stays deduplicated by key (category slug, item id) through a
// sanitize step that runs on construction, on every upsert and on restore
// from persistence. Deleting a category is rejected with a referential
// conflict while any item still references it. Deleting an item never touches
// historical order snapshots, which carry their own copy of line data.
package menu
