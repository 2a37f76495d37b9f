/*Package interval implements interval-union operations over a single
  coordinate axis, such as the positions of one circular reference.
  (Note the 'union'.  Overlapping and touching intervals are merged, not
  tracked separately.)
  Intervals are 0-based and half-open.  It assumes every position fits in a
  PosType, which is currently defined as int32 since that's what PSL and BAM
  files are limited to.
*/
package interval
