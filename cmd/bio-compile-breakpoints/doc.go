/*Command bio-compile-breakpoints merges per-sample breakpoint count tables
  into one matrix.

  The list file has one "<table path> <sample ID>" pair per line.  Each table
  is a TSV with a header row followed by "<breakpoint0>\t<breakpoint1>\t<count>"
  rows.  The output has a column per sample and a row per breakpoint pair,
  ordered by total count, largest first.

  Usage: bio-compile-breakpoints samples.txt matrix.tsv
*/
package main
