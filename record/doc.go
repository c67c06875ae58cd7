// Package record turns a finished search into a self-contained Record that
// can be stored, listed and replayed.
//
// A Record carries the grid dimensions, the start and goal, the obstacle
// layout, the path, the number of expanded cells, the elapsed time and a
// timestamp. Coordinates serialize as "row,col" and coordinate lists as
// "r,c;r,c", so stored records stay readable in JSON and YAML alike.
//
// IDs are short nanoids with the "run-" prefix. Validate checks a Record
// with go-playground/validator before it is persisted.
package record
