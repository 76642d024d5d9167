// Package source scans the spellbook text format into labelled blocks.
//
// The format is a small markdown subset:
//
//	## Fire Basics
//	### Spark:
//	* **Tier**: 1
//	* **Input**: Pay Fire
//
// A "### <Name>:" line opens a block, "* **<Label>**: <value>" lines add
// fields to the open block, a "## <Set>" line names the set that following
// blocks belong to, and a line reading exactly BREAK ends the stream. Any other
// line is ignored. Field labels are matched case-insensitively and the last
// occurrence of a label wins.
//
// The package knows nothing about units or spells; it only guarantees the
// block structure and offers typed field accessors that report parse errors
// naming the offending block.
package source
